package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"japaneseregister/logger"
	"japaneseregister/register"
)

var (
	inputFile string
	perLine   bool
)

var politeCmd = &cobra.Command{
	Use:   "polite [text]",
	Short: "Rewrite text into polite (です/ます) register",
	Example: `  jregister polite 今日は晴天だ。
  echo 今日は勉強をしよう。 | jregister polite`,
	RunE: runConvert(register.Polite),
}

var plainCmd = &cobra.Command{
	Use:   "plain [text]",
	Short: "Rewrite text into plain (だ/dictionary) register",
	Example: `  jregister plain 今日は晴天です。
  jregister plain --file letter.txt --lines`,
	RunE: runConvert(register.Plain),
}

func runConvert(dir register.Direction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, inputFile, cmd.InOrStdin())
		if err != nil {
			return err
		}
		docs, err := splitDocuments(text, perLine)
		if err != nil {
			return err
		}

		conv, err := newConverter()
		if err != nil {
			return err
		}
		memo, err := openMemo()
		if err != nil {
			return err
		}
		if memo != nil {
			defer memo.Close()
		}
		if cfg.TraceDir != "" {
			if err := (logger.Tracer{Dir: cfg.TraceDir}).Prepare(); err != nil {
				return fmt.Errorf("failed to prepare trace dir: %w", err)
			}
		}

		for _, r := range convertAll(context.Background(), conv, memo, dir, docs) {
			if r.err != nil {
				return fmt.Errorf("%s: %w", r.doc.ID, r.err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.output)
		}
		return nil
	}
}

func init() {
	for _, c := range []*cobra.Command{politeCmd, plainCmd} {
		c.Flags().StringVarP(&inputFile, "file", "f", "", "read input from file (- for stdin)")
		c.Flags().BoolVar(&perLine, "lines", false, "treat each line as a separate document")
		rootCmd.AddCommand(c)
	}
}
