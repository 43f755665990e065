package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docshell/internal/navigation"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List the documentation versions offered by the version picker",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		resolver, _, err := newResolver(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, v := range resolver.Known() {
			tree := resolver.LoadNavigationTree(v)
			if v == navigation.Latest {
				fmt.Fprintf(out, "%-14s -> %s (%d sections)\n", v, resolver.LatestConcrete(), len(tree))
				continue
			}
			fmt.Fprintf(out, "%-14s %d sections\n", v, len(tree))
		}
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Show which version a URL path resolves to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		resolver, _, err := newResolver(cfg)
		if err != nil {
			return err
		}

		v := resolver.Resolve(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v, resolver.ConcreteFor(v))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(resolveCmd)
}
