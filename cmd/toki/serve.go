package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/limbo/toki/internal/api"
	"github.com/limbo/toki/internal/repository"
	"github.com/limbo/toki/internal/service"
	"github.com/limbo/toki/pkg/config"
	jwtservice "github.com/limbo/toki/pkg/jwt_service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()
		secret := cfg.GetString("JWT_SECRET")
		if secret == "" {
			return errors.New("JWT_SECRET is not set")
		}
		st, err := openStores()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ids, err := seededIDs(ctx, st.moods)
		if err != nil {
			return err
		}
		serv := api.New(&api.ServicesList{
			UserService:     service.NewUserService(st.accounts, st.moods),
			SettingsService: service.NewSettingsService(st.accounts),
			MoodService:     service.NewMoodService(st.moods, ids),
			SessionService:  service.NewSessionService(st.credentials),
			Quotes:          repository.NewQuotesRepo(),
			JwtService:      jwtservice.New(secret, cfg.GetDuration("SESSION_TTL", jwtservice.DefaultTokenTTL)),
		})
		return serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", "127.0.0.1:8080"))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
