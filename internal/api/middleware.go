package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	errorvalues "github.com/limbo/toki/internal/error_values"
	"github.com/limbo/toki/pkg/httputil"
)

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
	usernameContextKey   = "Username"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		w.Header().Set("X-Request-ID", reqID.String())
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) AccessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		GetLoggerFromCtx(r.Context()).Debug("request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
		)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		username, ok := r.Context().Value(usernameContextKey).(string)
		if ok && username != "" {
			logger = logger.With(slog.String("username", username))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: invalid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		username, status, err := s.authenticate(r.Context(), tokenString)
		if err != nil {
			logger.Error("auth failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, status, "authorization failed", nil)
			return
		}
		ctx := context.WithValue(r.Context(), usernameContextKey, username)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// authenticate checks token and makes sure its owner still exists.
// On failure it also gives back the status code to answer with.
func (s *Server) authenticate(ctx context.Context, tokenString string) (string, int, error) {
	tokenClaims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			return "", http.StatusUnauthorized, err
		}
		return "", http.StatusInternalServerError, err
	}
	// Assuring if token is alive
	now := time.Now()
	if (tokenClaims.ExpiresAt != nil && tokenClaims.ExpiresAt.Time.Before(now)) ||
		(tokenClaims.NotBefore != nil && tokenClaims.NotBefore.Time.After(now)) {
		return "", http.StatusUnauthorized, errors.New("token expired or not ready")
	}
	// Assuring if user still exists
	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()
	_, err = s.userService.GetByName(ctx, tokenClaims.Username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAccountNotFound) {
			return "", http.StatusUnauthorized, err
		}
		return "", http.StatusInternalServerError, err
	}
	return tokenClaims.Username, http.StatusOK, nil
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUsernameFromContext(r *http.Request) (string, error) {
	username, ok := r.Context().Value(usernameContextKey).(string)
	if !ok || username == "" {
		return "", errors.New("username invalid or doesn't exists")
	}
	return username, nil
}
