package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
	"github.com/ziadkadry99/folio/internal/walker"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the portfolio as a static site",
	Long: `Renders the listing page and one case-study page per project into the
output directory, alongside the site's data, assets and static files.
Files already up to date in the output are not rewritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if buildOutput != "" {
			cfg.OutputDir = buildOutput
		}

		logger, err := newLogger(cfg, verbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		loader, err := newLoader(cfg)
		if err != nil {
			return err
		}
		skeletons, err := site.LoadSkeletons(cfg.SiteDir, cfg.SiteTitle)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		gen := &site.Generator{
			SiteDir:   cfg.SiteDir,
			OutputDir: cfg.OutputDir,
			Include:   cfg.Include,
			Exclude:   cfg.Exclude,
			Loader:    loader,
			Skeletons: skeletons,
			Reporter:  progress.NewReporter(),
			Logger:    logger,
		}
		res, err := gen.Generate(ctx)
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}

		fmt.Printf("\nBuilt %d pages into %s\n", res.Pages, cfg.OutputDir)
		fmt.Printf("  Files copied:    %d\n", res.Copied)
		fmt.Printf("  Files unchanged: %d\n", res.Skipped)
		for _, kind := range []walker.Kind{walker.KindImage, walker.KindData, walker.KindStyle, walker.KindScript, walker.KindFont, walker.KindOther} {
			if n := res.Assets[kind]; n > 0 {
				fmt.Printf("    %-6s %d\n", kind, n)
			}
		}
		if len(res.Missing) > 0 {
			fmt.Printf("  Missing images:  %d (see warnings above)\n", len(res.Missing))
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (overrides config)")
	rootCmd.AddCommand(buildCmd)
}
