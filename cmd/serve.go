package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/docshell/internal/db"
	"github.com/ziadkadry99/docshell/internal/navigation"
	"github.com/ziadkadry99/docshell/internal/server"
	"github.com/ziadkadry99/docshell/internal/session"
	"github.com/ziadkadry99/docshell/internal/site"
)

// sessionTTL is how long an untouched shell session is kept.
const sessionTTL = 30 * 24 * time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation shell over HTTP",
	Long: `Starts an HTTP server that renders documentation pages inside the version
shell. In development mode navigation data is reloaded when it changes and
open pages refresh themselves.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("watch", false, "reload navigation data on change even outside development mode")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}

	resolver, versions, err := newResolver(cfg)
	if err != nil {
		return err
	}

	database, err := db.Open(cfg.Server.SessionDB)
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}
	defer database.Close()
	sessions := session.NewStore(database)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if n, err := sessions.Prune(ctx, time.Now().Add(-sessionTTL)); err != nil {
		logger.Warn("pruning sessions", zap.Error(err))
	} else if n > 0 {
		logger.Info("pruned stale sessions", zap.Int64("count", n))
	}

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		AllowAll: cfg.Server.AllowAllOrigins,
		DevMode:  cfg.Development(),
		Product:  cfg.Product,
		Logo:     cfg.Logo,
		Include:  cfg.Include,
		Exclude:  cfg.Exclude,
	}, resolver, site.NewRenderer(cfg.ContentDir), sessions, logger)

	watch, _ := cmd.Flags().GetBool("watch")
	if watch || cfg.Development() {
		watcher, err := navigation.NewWatcher(cfg.Loader(), versions, resolver.Catalog(), logger)
		if err != nil {
			return fmt.Errorf("creating navigation watcher: %w", err)
		}
		watcher.OnReload(srv.Hub().Broadcast)
		if err := watcher.Start(ctx); err != nil {
			return fmt.Errorf("watching %s: %w", cfg.DataDir, err)
		}
		defer watcher.Stop()
	}

	// Graceful shutdown.
	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("docshell starting",
		zap.String("version", Version),
		zap.Int("port", cfg.Server.Port),
		zap.Strings("versions", versionStrings(resolver.Known())),
		zap.String("latest", string(resolver.LatestConcrete())),
		zap.Bool("dev_mode", cfg.Development()))

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func versionStrings(versions []navigation.VersionID) []string {
	out := make([]string, len(versions))
	for i, v := range versions {
		out[i] = v.String()
	}
	return out
}
