package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/live"
	"github.com/ziadkadry99/folio/internal/server"
	"github.com/ziadkadry99/folio/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio with live galleries",
	Long: `Serves the listing page and case-study pages, rendering each request from
a fresh load of the dataset. Case-study galleries are driven over a
websocket session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
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

		srv := server.New(server.Config{
			Port:       cfg.Port,
			SiteDir:    cfg.SiteDir,
			DetailPath: cfg.DetailPath,
			AllowAll:   cfg.AllowAllOrigins,
		}, loader, skeletons, live.NewRegistry(cfg.SessionTimeout()), logger)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown", zap.Error(err))
			}
		}()

		fmt.Fprintf(os.Stderr, "folio %s serving %s on http://localhost:%d\n", Version, cfg.SiteDir, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Dataset: %s\n", loader)
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
