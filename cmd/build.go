package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docshell/internal/progress"
	"github.com/ziadkadry99/docshell/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static documentation site",
	Long:  `Renders every version, including the latest alias, into a static site with one directory per version under the output directory.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	resolver, _, err := newResolver(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	generator := site.NewSiteGenerator(resolver, site.NewRenderer(cfg.ContentDir), outputDir, cfg.Product)
	generator.Logo = cfg.Logo
	generator.Include = cfg.Include
	generator.Exclude = cfg.Exclude
	generator.Reporter = progress.NewReporter()
	generator.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pageCount, err := generator.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Static site generated: %s (%d pages, %d versions)\n", outputDir, pageCount, len(resolver.Known()))
	return nil
}
