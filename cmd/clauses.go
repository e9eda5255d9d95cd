package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"japaneseregister/ingest"
	"japaneseregister/register"
)

var clausesDirection string

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ecdc4"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))
)

var clausesCmd = &cobra.Command{
	Use:   "clauses [text]",
	Short: "Show how text is split into clauses and how each is rewritten",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := register.ParseDirection(clausesDirection)
		if err != nil {
			return err
		}
		text, err := readInput(args, inputFile, cmd.InOrStdin())
		if err != nil {
			return err
		}
		doc, err := ingest.NewDocument(text)
		if err != nil {
			return err
		}
		conv, err := newConverter()
		if err != nil {
			return err
		}
		rep, err := conv.Inspect(dir, doc.Text)
		if err != nil {
			return err
		}
		renderClauses(cmd.OutOrStdout(), rep)
		return nil
	},
}

// renderClauses prints one row per clause. Columns are padded by display
// width so full-width text lines up.
func renderClauses(w io.Writer, rep register.Report) {
	header := []string{"#", "TYPE", "INPUT", "SEP", "OUTPUT"}
	rows := make([][]string, 0, len(rep.Clauses))
	for _, c := range rep.Clauses {
		rows = append(rows, []string{strconv.Itoa(c.Index), string(c.Type), c.Input, c.Sep, c.Output})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for i, cell := range r {
			if n := runewidth.StringWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	line := func(cells []string) string {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			padded[i] = runewidth.FillRight(cell, widths[i])
		}
		return strings.TrimRight(strings.Join(padded, "  "), " ")
	}

	fmt.Fprintln(w, headerStyle.Render(line(header)))
	for _, r := range rows {
		fmt.Fprintln(w, line(r))
	}
	for _, warn := range rep.Warnings {
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("warning: %s %q at byte %d", warn.Message, warn.Surface, warn.Offset)))
	}
}

func init() {
	clausesCmd.Flags().StringVarP(&clausesDirection, "direction", "d", string(register.Polite), "polite or plain")
	clausesCmd.Flags().StringVarP(&inputFile, "file", "f", "", "read input from file (- for stdin)")
	rootCmd.AddCommand(clausesCmd)
}
