package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yamiarchive/yami/internal/catalog"
	"github.com/yamiarchive/yami/internal/query"
	"github.com/yamiarchive/yami/internal/state"
)

var (
	flagListQuery    string
	flagListCategory string
	flagListMinCred  float64
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles matching a query",
	Long: `Print the articles that pass the search text, category, and credibility filters.

Search text is matched case-insensitively against title, lead, tags, region, and era.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		opts := query.Options{
			Text:           flagListQuery,
			Category:       s.cfg.StartCategory(),
			MinCredibility: s.cfg.MinCredibility,
		}
		if cmd.Flags().Changed("category") {
			opts.Category = flagListCategory
		}
		if cmd.Flags().Changed("min-cred") {
			opts.MinCredibility = flagListMinCred
		}

		results := query.Apply(s.catalog.Articles(), opts)
		s.log.Debug("query.applied",
			"text", opts.Text,
			"category", opts.Category,
			"min_credibility", opts.MinCredibility,
			"results", len(results),
		)

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No articles match.")
			return nil
		}
		for _, a := range results {
			writeArticleRow(out, a, s.store)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one article in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		a, ok := s.catalog.Get(args[0])
		if !ok {
			return fmt.Errorf("no article with id %q", args[0])
		}
		writeArticle(cmd.OutOrStdout(), a, s.store)
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category filter values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		articles := s.catalog.Articles()
		for _, c := range s.categories() {
			n := len(query.Filter(articles, "", c, 0))
			fmt.Fprintf(out, "%s\t%d\n", c, n)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&flagListQuery, "query", "q", "", "search text")
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "category (default from config)")
	listCmd.Flags().Float64VarP(&flagListMinCred, "min-cred", "m", 0, "minimum credibility (default from config)")

	rootCmd.AddCommand(listCmd, showCmd, categoriesCmd)
}

func writeArticleRow(w io.Writer, a catalog.Article, store *state.Store) {
	mark := " "
	if store.IsBookmarked(a.ID) {
		mark = "★"
	}
	fmt.Fprintf(w, "%s %-12s %-16s %.1f  %s\n", mark, a.ID, a.PrimaryCategory(), a.Credibility, a.Title)
}

func writeArticle(w io.Writer, a catalog.Article, store *state.Store) {
	fmt.Fprintln(w, a.Title)
	fmt.Fprintf(w, "id: %s\n", a.ID)
	fmt.Fprintf(w, "tags: %s\n", strings.Join(a.Tags, ", "))
	fmt.Fprintf(w, "region: %s  era: %s\n", a.Region, a.Era)
	fmt.Fprintf(w, "credibility: %.1f/5  danger: %s (%d)\n", a.Credibility, catalog.DangerLabel(float64(a.Danger)), a.Danger)

	v, _ := store.Belief(a.ID)
	fmt.Fprintf(w, "saved: %t  vote: %s\n", store.IsBookmarked(a.ID), v.Label())

	fmt.Fprintln(w)
	fmt.Fprintln(w, a.Lead)
	fmt.Fprintln(w)
	fmt.Fprintln(w, a.Body)

	if len(a.Sources) > 0 {
		fmt.Fprintln(w)
		for _, src := range a.Sources {
			fmt.Fprintf(w, "- %s %s\n", src.Label, src.URL)
		}
	}
	if a.Image != "" {
		fmt.Fprintf(w, "image: %s\n", a.Image)
	}
}
