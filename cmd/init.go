package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docshell/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize docshell configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the product name, versions and directories, and writes a .docshell.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
