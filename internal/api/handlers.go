package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/toki/internal/error_values"
	"github.com/limbo/toki/internal/service"
	"github.com/limbo/toki/pkg/entity"
	"github.com/limbo/toki/pkg/httputil"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type SessionResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type CreateMoodRequest struct {
	Mood       string `json:"mood"`
	Note       string `json:"note"`
	Reflection string `json:"reflection"`
}

type UpdateReflectionRequest struct {
	Reflection string `json:"reflection"`
}

type GetMoodsResponse struct {
	Username string             `json:"username"`
	Moods    []*entity.MoodEntry `json:"moods"`
}

type QuoteRequest struct {
	Quote string `json:"quote"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	account, err := s.userService.Register(ctx, &service.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAccountExists):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid credentials", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "username and password must not be blank", nil)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"username": account.Username,
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	account, err := s.userService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAccountNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(account)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	if req.Remember {
		if err = s.sessionService.Remember(ctx, account.Username, token); err != nil {
			// Login itself succeeded, only automatic sign-in is lost
			logger.Warn("login: remembering session error", slog.String("error", err.Error()))
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SessionResponse{
		Username: account.Username,
		Token:    token,
	})
	logger.Info("successful login")
}

func (s *Server) ResumeSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	username, token, err := s.sessionService.Resume(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNothingRemembered) {
			logger.Info("resume session: nothing remembered")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no remembered session", nil)
			return
		}
		logger.Error("resume session error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resuming session", nil)
		return
	}
	owner, status, err := s.authenticate(ctx, token)
	if err == nil && owner != username {
		status, err = http.StatusUnauthorized, errorvalues.ErrInvalidToken
	}
	if err != nil {
		logger.Error("resume session error: stale session", slog.String("error", err.Error()))
		if status == http.StatusUnauthorized {
			if forgetErr := s.sessionService.Forget(ctx); forgetErr != nil {
				logger.Error("resume session error: forgetting stale session", slog.String("error", forgetErr.Error()))
			}
		}
		httputil.WriteErrorResponse(w, status, "remembered session is no longer valid", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SessionResponse{
		Username: username,
		Token:    token,
	})
	logger.Info("session resumed")
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.sessionService.Forget(ctx); err != nil {
		logger.Error("logout error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during logout", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("logged out")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, err := GetUsernameFromContext(r)
	if err != nil {
		logger.Error("account deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("account deletion error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong password", nil)
		case errors.Is(err, errorvalues.ErrAccountNotFound):
			logger.Error("account deletion error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("account deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting account", nil)
		}
		return
	}
	if remembered, _, err := s.sessionService.Resume(ctx); err == nil && remembered == username {
		if err = s.sessionService.Forget(ctx); err != nil {
			logger.Warn("account deletion: forgetting session error", slog.String("error", err.Error()))
		}
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, err := GetUsernameFromContext(r)
	if err != nil {
		logger.Error("get settings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	settings, err := s.settingsService.Get(ctx, username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAccountNotFound) {
			logger.Error("get settings error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("get settings error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting settings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
}

func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, err := GetUsernameFromContext(r)
	if err != nil {
		logger.Error("update settings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var patch service.SettingsPatch
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&patch); err != nil {
		logger.Error("update settings error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	settings, err := s.settingsService.Update(ctx, username, patch)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update settings error: invalid settings", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid settings", err)
		case errors.Is(err, errorvalues.ErrAccountNotFound):
			logger.Error("update settings error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("update settings error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating settings", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("settings updated")
}

func (s *Server) GetMoods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, err := GetUsernameFromContext(r)
	if err != nil {
		logger.Error("get moods error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	moods, err := s.moodService.Journal(ctx, username)
	if err != nil {
		logger.Error("getting moods list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting moods list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetMoodsResponse{
		Username: username,
		Moods:    moods,
	})
	logger.Info("moods provided")
}

func (s *Server) CreateMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, err := GetUsernameFromContext(r)
	if err != nil {
		logger.Error("create mood error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateMoodRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("create mood error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	entry, err := s.moodService.LogMood(ctx, username, &service.LogMoodRequest{
		Mood:       req.Mood,
		Note:       req.Note,
		Reflection: req.Reflection,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("create mood error: invalid mood", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "mood must not be blank", nil)
			return
		}
		logger.Error("create mood error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging mood", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("mood logged", slog.Int64("mood_id", entry.ID))
}

func (s *Server) GetLatestMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, err := GetUsernameFromContext(r)
	if err != nil {
		logger.Error("get latest mood error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	entry, err := s.moodService.Latest(ctx, username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMoodEntryNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no moods logged yet", nil)
			return
		}
		logger.Error("get latest mood error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting latest mood", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

func (s *Server) GetMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, id, ok := s.moodTarget(w, r, "get mood")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	entry, err := s.moodService.Get(ctx, username, id)
	if err != nil {
		writeMoodError(w, logger, "get mood", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

func (s *Server) UpdateReflection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, id, ok := s.moodTarget(w, r, "update reflection")
	if !ok {
		return
	}
	var req UpdateReflectionRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("update reflection error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	entry, err := s.moodService.UpdateReflection(ctx, username, id, req.Reflection)
	if err != nil {
		writeMoodError(w, logger, "update reflection", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("reflection updated", slog.Int64("mood_id", id))
}

func (s *Server) DeleteMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username, id, ok := s.moodTarget(w, r, "mood deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.moodService.Delete(ctx, username, id); err != nil {
		writeMoodError(w, logger, "mood deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("mood deleted", slog.Int64("mood_id", id))
}

// moodTarget extracts the caller and the mood id from path value. It answers
// the request itself when either is missing.
func (s *Server) moodTarget(w http.ResponseWriter, r *http.Request, op string) (string, int64, bool) {
	logger := GetLoggerFromCtx(r.Context())
	username, err := GetUsernameFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return "", 0, false
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid mood id in path value", nil)
		return "", 0, false
	}
	return username, id, true
}

// Entries of other users are reported as absent.
func writeMoodError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrMoodEntryNotFound):
		logger.Error(op + " error: unexist mood")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "mood doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: mood has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "mood doesn't exist", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func (s *Server) RandomQuote(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, QuoteRequest{Quote: s.quotes.Random()})
}

func (s *Server) AddQuote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req QuoteRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("add quote error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if !s.quotes.Add(req.Quote) {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "quote must not be blank", nil)
		return
	}
	w.WriteHeader(http.StatusCreated)
	logger.Info("quote added")
}
