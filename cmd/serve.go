package cmd

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"japaneseregister/config"
	"japaneseregister/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the conversion API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, err := newConverter()
		if err != nil {
			return err
		}
		opts := server.Options{AllowedOrigins: cfg.Server.AllowedOrigins}
		memo, err := openMemo()
		if err != nil {
			return err
		}
		if memo != nil {
			defer memo.Close()
			opts.Memo = memo
		}

		// the listening address is always reported
		log.SetOutput(cmd.ErrOrStderr())
		log.Printf("[server] listening on %s", cfg.Server.Addr)
		return http.ListenAndServe(cfg.Server.Addr, server.New(conv, opts))
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	v.BindPFlag(config.KeyAddr, serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}
