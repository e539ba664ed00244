package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"patient-api/internal/auth"
	"patient-api/internal/config"
	"patient-api/internal/logging"
	"patient-api/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "patient-api",
		Short: "Patient Management System API",
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			log := logging.New(cfg.IsDevelopment())
			if !cfg.IsDevelopment() {
				gin.SetMode(gin.ReleaseMode)
			}

			app, err := server.New(cfg, log)
			if err != nil {
				log.Error().Err(err).Msg("app init failed")
				return err
			}
			defer func() {
				if err := app.Close(); err != nil {
					log.Error().Err(err).Msg("close app")
				}
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, cfg, app.Router(), log)
		},
	}
}

// hashPasswordCmd prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
