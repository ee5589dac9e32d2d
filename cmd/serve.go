package cmd

import (
	"context"
	"dressify/condb"
	"dressify/config"
	"dressify/routes"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "HTTP port (default from $PORT or 5000)")
	serveCmd.Flags().Bool("migrate", false, "Apply the schema before serving (postgres only)")
	serveCmd.Flags().Bool("seed", false, "Load demo data before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		cfg.Port = p
	}
	logger := newLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, closeStores, err := openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if migrate, _ := cmd.Flags().GetBool("migrate"); migrate && cfg.StoreDriver == config.StorePostgres {
		if err := migrateDatabase(ctx); err != nil {
			return err
		}
	}
	if seed, _ := cmd.Flags().GetBool("seed"); seed {
		if err := condb.Seed(ctx, stores, logger); err != nil {
			return err
		}
	}

	app := routes.NewApp(cfg, stores, logger)

	errc := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Addr(), "env", cfg.AppEnv, "store", cfg.StoreDriver)
		errc <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
