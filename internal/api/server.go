package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/limbo/toki/internal/service"
)

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	settingsService service.SettingsServiceI
	moodService     service.MoodServiceI
	sessionService  service.SessionServiceI
	quotes          QuoteProvider
	jwtService      JWTServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	SettingsService service.SettingsServiceI
	MoodService     service.MoodServiceI
	SessionService  service.SessionServiceI
	Quotes          QuoteProvider
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions == nil {
		log.Fatal("provided nil services list")
	}
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		settingsService: servicesOptions.SettingsService,
		moodService:     servicesOptions.MoodService,
		sessionService:  servicesOptions.SessionService,
		quotes:          servicesOptions.Quotes,
		jwtService:      servicesOptions.JwtService,
	}
	s.MountRoutes()
	return s
}

func (s *Server) MountRoutes() {
	s.mx.Use(
		middleware.Recoverer,
		s.RequestIDMiddleware,
		s.SettingUpLoggerMiddleware,
		s.AccessLogMiddleware,
	)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Get("/auth/session", s.ResumeSession)
		r.Post("/auth/logout", s.Logout)

		r.Get("/quotes/random", s.RandomQuote)
		r.Post("/quotes", s.AddQuote)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/settings", s.GetSettings)
			r.Patch("/settings", s.UpdateSettings)

			r.Get("/moods", s.GetMoods)
			r.Post("/moods", s.CreateMood)
			r.Get("/moods/latest", s.GetLatestMood)
			r.Get("/moods/{id}", s.GetMood)
			r.Patch("/moods/{id}/reflection", s.UpdateReflection)
			r.Delete("/moods/{id}", s.DeleteMood)

			r.Delete("/account", s.DeleteAccount)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:         address,
		Handler:      s.mx,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server stopped")
	return nil
}
