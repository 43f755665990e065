package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docshell",
	Short: "Versioned documentation shell and static site builder",
	Long: `docshell serves and builds multi-version documentation sites. Every page
sits inside a shell with a version picker and a sidebar whose links follow
the selected version, with a "latest" alias that mirrors the newest release.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".docshell.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
