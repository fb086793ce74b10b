package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yamiarchive/yami/internal/kv"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog and saved-state statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		bookmarks, believe, disbelieve := s.store.Counts()

		fmt.Fprintf(out, "Articles: %d\n", s.catalog.Len())
		fmt.Fprintf(out, "Saved: %d\n", bookmarks)
		fmt.Fprintf(out, "Votes: %d believe, %d disbelieve\n", believe, disbelieve)

		backend := s.cfg.Storage.Backend
		if !s.durable {
			backend = kv.BackendMemory + " (fallback)"
		}
		fmt.Fprintf(out, "Storage: %s\n", backend)

		switch st := s.kv.(type) {
		case *kv.SQLite:
			keys, size, err := st.Stats()
			if err != nil {
				return fmt.Errorf("reading stats: %w", err)
			}
			fmt.Fprintf(out, "Path: %s\n", st.Path())
			fmt.Fprintf(out, "Keys: %d\n", keys)
			fmt.Fprintf(out, "Size: %s\n", formatBytes(size))
		case *kv.File:
			fmt.Fprintf(out, "Path: %s\n", st.Path())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
