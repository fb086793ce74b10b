package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagDebug    bool
	flagQuery    string
	flagCategory string
	flagMinCred  float64
)

var rootCmd = &cobra.Command{
	Use:          "yami",
	Short:        "闇市アーカイブ: occult and urban-legend catalog browser",
	Long:         "yami browses a curated catalog of urban legends and occult lore. Search, filter by category or credibility, save articles, and record whether you believe them.",
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "initial search text")
	rootCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "initial category (default from config)")
	rootCmd.Flags().Float64VarP(&flagMinCred, "min-cred", "m", -1, "initial minimum credibility 0-5 (default from config)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "yami %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
