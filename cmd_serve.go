package main

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/api"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

func serveCmd() *cobra.Command {
	var (
		migrate         bool
		shutdownTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			if migrate {
				if err := database.Migrate(db); err != nil {
					return err
				}
			}

			mailer, err := services.NewMailer(cfg.Mail)
			if err != nil {
				return err
			}
			media, err := services.NewMediaStore(cmd.Context(), cfg.Media)
			if err != nil {
				return err
			}

			server, err := api.NewServer(cfg, api.Deps{
				Database: database.New(db),
				Notifier: services.NewNotifier(mailer, cfg.Mail),
				Media:    media,
			})
			if err != nil {
				return err
			}

			errChannel := make(chan error, 2)
			go server.Start(errChannel)
			go listenToInterrupt(errChannel)

			fatalErr := <-errChannel
			log.Info().Err(fatalErr).Msg("Closing server")

			server.ShutdownGracefully(shutdownTimeout)
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply schema migrations before serving")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "time allowed for in-flight requests on shutdown")
	return cmd
}
