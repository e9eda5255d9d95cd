package cmd

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"japaneseregister/store"
)

var errNoCache = errors.New("no cache configured (use --cache or cache_path)")

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the conversion memo",
	Long:  `List, inspect, and clear the SQLite conversion memo.`,
}

func withMemo(fn func(*cobra.Command, *store.Store) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		db, err := openMemo()
		if err != nil {
			return err
		}
		if db == nil {
			return errNoCache
		}
		defer db.Close()
		return fn(cmd, db)
	}
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show memo statistics",
	RunE: withMemo(func(cmd *cobra.Command, db *store.Store) error {
		stats, err := db.Stats(context.Background())
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Total entries:  %d\n", stats.TotalEntries)
		fmt.Fprintf(w, "Polite entries: %d\n", stats.PoliteCount)
		fmt.Fprintf(w, "Plain entries:  %d\n", stats.PlainCount)
		fmt.Fprintf(w, "Total usage:    %d\n", stats.TotalUsage)
		return nil
	}),
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List memo entries, most recently used first",
	RunE: withMemo(func(cmd *cobra.Command, db *store.Store) error {
		entries, err := db.List(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No entries in the conversion memo.")
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DIRECTION\tUSED\tLAST USED\tSOURCE\tOUTPUT")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
				e.Direction, e.UsageCount, e.LastUsed.Format("2006-01-02 15:04"),
				runewidth.Truncate(e.SourceText, 40, "..."), runewidth.Truncate(e.OutputText, 40, "..."))
		}
		return w.Flush()
	}),
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all entries from the memo",
	RunE: withMemo(func(cmd *cobra.Command, db *store.Store) error {
		n, err := db.Clear(context.Background())
		if err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d entries from the conversion memo.\n", n)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
