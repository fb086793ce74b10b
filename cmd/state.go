package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yamiarchive/yami/internal/state"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark ID",
	Short: "Toggle the saved state of an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		id := args[0]
		out := cmd.OutOrStdout()
		a, ok := s.catalog.Get(id)
		if !ok {
			// A bookmark whose article left the catalog can still be removed.
			if !s.store.IsBookmarked(id) {
				return fmt.Errorf("no article with id %q", id)
			}
			s.store.ToggleBookmark(id)
			fmt.Fprintf(out, "Removed %s\n", id)
			warnUnsaved(cmd, s)
			return nil
		}

		if s.store.ToggleBookmark(a.ID) {
			fmt.Fprintf(out, "Saved %s (%s)\n", a.ID, a.Title)
		} else {
			fmt.Fprintf(out, "Removed %s (%s)\n", a.ID, a.Title)
		}
		warnUnsaved(cmd, s)
		return nil
	},
}

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List saved articles, in the order they were saved",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		saved := s.catalog.Resolve(s.store.Bookmarks())
		if len(saved) == 0 {
			fmt.Fprintln(out, "No saved articles.")
			return nil
		}
		for _, a := range saved {
			writeArticleRow(out, a, s.store)
		}
		return nil
	},
}

var voteCmd = &cobra.Command{
	Use:   "vote ID believe|disbelieve",
	Short: "Record whether you believe an article",
	Long: `Record a belief vote for an article. A later vote replaces the earlier one.

Accepted stances: believe, disbelieve, 1, -1, 信じる, 信じない.
Pass -1 after "--" so it is not read as a flag.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := state.ParseVote(args[1])
		if err != nil {
			return err
		}

		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		a, ok := s.catalog.Get(args[0])
		if !ok {
			return fmt.Errorf("no article with id %q", args[0])
		}

		s.store.SetBelief(a.ID, v)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", a.ID, v.Label())
		warnUnsaved(cmd, s)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bookmarkCmd, bookmarksCmd, voteCmd)
}

// warnUnsaved reports a mutation that did not reach durable storage. The
// change itself still applied in memory, so the command does not fail.
func warnUnsaved(cmd *cobra.Command, s *session) {
	if err := s.store.LastSaveError(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "[warn] change not saved: %v\n", err)
		return
	}
	if !s.durable {
		fmt.Fprintln(cmd.ErrOrStderr(), "[warn] storage unavailable, change kept for this run only")
	}
}
