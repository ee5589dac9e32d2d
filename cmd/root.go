package cmd

import (
	"context"
	"dressify/condb"
	"dressify/config"
	"dressify/store"
	"dressify/store/memory"
	"dressify/store/postgres"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "dressify",
	Short: "Dressify - fashion catalog REST API",
	Long:  "Dressify serves the product catalog, favorites, likes and posts API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cfg.Validate()
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("store", "", "Store driver: postgres or memory")
	rootCmd.PersistentFlags().String("database-url", "", "PostgreSQL connection URL")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
}

func initConfig() {
	cfg = config.DefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("store"); v != "" {
		cfg.StoreDriver = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("database-url"); v != "" {
		cfg.DatabaseURL = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
}

// newLogger writes JSON in production and text otherwise.
func newLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openStores builds the configured backend. The returned func releases it.
func openStores(ctx context.Context) (store.Stores, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		return memory.New(), func() {}, nil
	}

	pool, err := condb.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return store.Stores{}, nil, err
	}
	return postgres.New(pool), pool.Close, nil
}
