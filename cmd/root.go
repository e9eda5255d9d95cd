// Package cmd contains the jregister CLI commands.
package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"japaneseregister/config"
)

var (
	cfgFile string
	v       = config.NewViper()
	cfg     = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "jregister",
	Short: "Switch Japanese text between plain and polite register",
	Long: `jregister rewrites the final predicates of Japanese sentences between
plain style (だ / dictionary forms) and polite style (です / ます).

Text is split into clauses at sentence punctuation and at the adversative
particle が; bracketed spans are copied through untouched.

  jregister polite 今日は晴天だ。
  jregister plain --file letter.txt
  jregister clauses 雨だが、行く。
  jregister serve --addr :8080`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (YAML)")
	flags.String("trace", "", "directory for JSON clause traces")
	flags.String("cache", "", "SQLite conversion memo path")
	flags.Bool("normalize", false, "NFC-normalize input before analysis")
	flags.Bool("verbose", false, "verbose log output")

	v.BindPFlag(config.KeyTraceDir, flags.Lookup("trace"))
	v.BindPFlag(config.KeyCachePath, flags.Lookup("cache"))
	v.BindPFlag(config.KeyNormalize, flags.Lookup("normalize"))
	v.BindPFlag("verbose", flags.Lookup("verbose"))
}

// loadConfig reads the config file, applies flag and JREGISTER_* overrides
// and routes log output.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		cfgFile = v.GetString("config")
	}
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	loaded.Override(v)
	cfg = loaded

	if v.GetBool("verbose") {
		log.SetOutput(cmd.ErrOrStderr())
	} else {
		log.SetOutput(io.Discard)
	}
	return nil
}
