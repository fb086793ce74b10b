package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yamiarchive/yami/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	minCred := s.cfg.MinCredibility
	if flagMinCred >= 0 {
		minCred = flagMinCred
	}
	category := s.cfg.StartCategory()
	if flagCategory != "" {
		category = flagCategory
	}

	return tui.Run(tui.RunOpts{
		Catalog:        s.catalog,
		Store:          s.store,
		Logger:         s.log,
		Query:          flagQuery,
		Category:       category,
		MinCredibility: minCred,
		Categories:     s.categories(),
	})
}
