package commands

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/api"
	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/config"
	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/logger"
	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/notifier"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the inbound mail webhook server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logger.New(cfg.LogLevel)
			n := notifier.New(cfg, log)

			app := fiber.New(fiber.Config{
				DisableStartupMessage: true,
			})
			api.NewHandler(cfg, n, log).RegisterRoutes(app)

			log.Info().Str("port", cfg.Port).Msg("listening for inbound mail")
			return app.Listen(":" + cfg.Port)
		},
	}
}
