package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/inkhouse/ecommerce-backend/internal/config"
	"github.com/inkhouse/ecommerce-backend/internal/infra/db"
	"github.com/inkhouse/ecommerce-backend/internal/logger"
	"github.com/inkhouse/ecommerce-backend/internal/server"
)

func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "inkhouse-api",
		Short:         "inkhouse e-commerce backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(
		serveCommand(&envFile),
		migrateCommand(&envFile),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, log, gdb, err := bootstrap(ctx, *envFile)
			if err != nil {
				return err
			}
			defer closeDB(gdb)

			// 起動時にテーブルを作成
			if err := db.Migrate(gdb); err != nil {
				return err
			}

			srv, err := server.Wire(cfg, log, gdb)
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}
}

func migrateCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "create or update the users, products and orders tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, gdb, err := bootstrap(cmd.Context(), *envFile)
			if err != nil {
				return err
			}
			defer closeDB(gdb)

			if err := db.Migrate(gdb); err != nil {
				return err
			}
			log.Info().Msg("migrated")
			return nil
		},
	}
}

// bootstrap loads .env and config, initialises the logger and opens the DB.
func bootstrap(ctx context.Context, envFile string) (config.Config, zerolog.Logger, *gorm.DB, error) {
	//.env は無くてもよい
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, zerolog.Logger{}, nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return config.Config{}, zerolog.Logger{}, nil, err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	//DB接続
	gdb, err := db.Connect(cfg, log)
	if err != nil {
		return config.Config{}, zerolog.Logger{}, nil, err
	}
	log.Info().Str("dsn", cfg.RedactedDSN()).Msg("database connected")

	return cfg, log, gdb, nil
}

func closeDB(gdb *gorm.DB) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log := logger.Get()
		log.Warn().Err(err).Msg("close database")
	}
}
