package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/toki/internal/api"
	errorvalues "github.com/limbo/toki/internal/error_values"
	"github.com/limbo/toki/internal/repository"
	"github.com/limbo/toki/internal/service"
	"github.com/limbo/toki/internal/service/mocks"
	"github.com/limbo/toki/pkg/entity"
	jwtservice "github.com/limbo/toki/pkg/jwt_service"
)

var (
	username = "test_name"
	password = "test_password"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func withUser(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "Username", username))
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	req := &service.RegisterRequest{Username: username, Password: password}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			Desc:         "registered",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), req).Return(&entity.Account{Username: username}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "existed user",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), req).Return(nil, errorvalues.ErrAccountExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "blank credentials",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), req).Return(nil, errorvalues.ErrValidation)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), req).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", tc.Body)
			serv.Register(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	sService := mocks.NewMockSessionServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService:    uService,
		SessionService: sService,
		JwtService:     jwtservice.New("secret", time.Hour),
	})
	account := &entity.Account{Username: username}
	marshal := func(remember bool) []byte {
		body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
			Username: username,
			Password: password,
			Remember: remember,
		})
		require.NoError(t, err)
		return body
	}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         []byte
	}{
		{
			Desc:         "logged in",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).Return(account, nil)
			},
			Body: marshal(false),
		},
		{
			Desc:         "logged in and remembered",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).Return(account, nil)
				sService.EXPECT().Remember(gomock.Any(), username, gomock.Any()).Return(nil)
			},
			Body: marshal(true),
		},
		{
			Desc:         "remembering failure does not fail login",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).Return(account, nil)
				sService.EXPECT().Remember(gomock.Any(), username, gomock.Any()).Return(errors.New("db error"))
			},
			Body: marshal(true),
		},
		{
			Desc:         "user not found",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrAccountNotFound)
			},
			Body: marshal(false),
		},
		{
			Desc:         "wrong password",
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrWrongCredentials)
			},
			Body: marshal(false),
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).Return(nil, errors.New("service error"))
			},
			Body: marshal(false),
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(tc.Body))
			serv.Login(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusOK {
				var resp api.SessionResponse
				require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, username, resp.Username)
				assert.NotEmpty(t, resp.Token)
			}
		})
	}
}

func TestResumeSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	sService := mocks.NewMockSessionServiceI(ctrl)
	jwtService := jwtservice.New("secret", time.Hour)
	serv := api.New(&api.ServicesList{
		UserService:    uService,
		SessionService: sService,
		JwtService:     jwtService,
	})
	token, err := jwtService.GenerateToken(&entity.Account{Username: username})
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "resumed",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				sService.EXPECT().Resume(gomock.Any()).Return(username, token, nil)
				uService.EXPECT().GetByName(gomock.Any(), username).Return(&entity.Account{Username: username}, nil)
			},
		},
		{
			Desc:         "nothing remembered",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				sService.EXPECT().Resume(gomock.Any()).Return("", "", errorvalues.ErrNothingRemembered)
			},
		},
		{
			Desc:         "invalid token forgotten",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				sService.EXPECT().Resume(gomock.Any()).Return(username, "broken", nil)
				sService.EXPECT().Forget(gomock.Any()).Return(nil)
			},
		},
		{
			Desc:         "deleted user forgotten",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				sService.EXPECT().Resume(gomock.Any()).Return(username, token, nil)
				uService.EXPECT().GetByName(gomock.Any(), username).Return(nil, errorvalues.ErrAccountNotFound)
				sService.EXPECT().Forget(gomock.Any()).Return(nil)
			},
		},
		{
			Desc:         "token of another user",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				sService.EXPECT().Resume(gomock.Any()).Return("someone_else", token, nil)
				uService.EXPECT().GetByName(gomock.Any(), username).Return(&entity.Account{Username: username}, nil)
				sService.EXPECT().Forget(gomock.Any()).Return(nil)
			},
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				sService.EXPECT().Resume(gomock.Any()).Return("", "", errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
			serv.ResumeSession(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	username, err := api.GetUsernameFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"username": "` + username + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	jwtService := jwtservice.New("secret", time.Hour)
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtService,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	token, err := jwtService.GenerateToken(&entity.Account{Username: username})
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		ExpectedCode int
		Header       string
		MockPrepFunc func()
	}{
		{
			Desc:         "successful auth",
			ExpectedCode: http.StatusOK,
			Header:       "Bearer " + token,
			MockPrepFunc: func() {
				uService.EXPECT().GetByName(gomock.Any(), username).Return(&entity.Account{Username: username}, nil)
			},
		},
		{
			Desc:         "no header",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "wrong scheme",
			ExpectedCode: http.StatusUnauthorized,
			Header:       "Basic " + token,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "forged token",
			ExpectedCode: http.StatusUnauthorized,
			Header:       "Bearer " + token + "x",
			MockPrepFunc: func() {},
		},
		{
			Desc:         "deleted user",
			ExpectedCode: http.StatusUnauthorized,
			Header:       "Bearer " + token,
			MockPrepFunc: func() {
				uService.EXPECT().GetByName(gomock.Any(), username).Return(nil, errorvalues.ErrAccountNotFound)
			},
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			Header:       "Bearer " + token,
			MockPrepFunc: func() {
				uService.EXPECT().GetByName(gomock.Any(), username).Return(nil, errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
			if tc.Header != "" {
				r.Header.Set("Authorization", tc.Header)
			}
			handler.ServeHTTP(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestUpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	setService := mocks.NewMockSettingsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		SettingsService: setService,
	})
	dark := true
	patch := service.SettingsPatch{IsDarkMode: &dark}
	body, err := sonic.ConfigDefault.Marshal(patch)
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         []byte
	}{
		{
			Desc:         "updated",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				setService.EXPECT().Update(gomock.Any(), username, patch).Return(entity.DefaultSettings().WithDarkMode(true), nil)
			},
			Body: body,
		},
		{
			Desc:         "invalid settings",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				setService.EXPECT().Update(gomock.Any(), username, patch).Return(entity.Settings{}, errorvalues.ErrValidation)
			},
			Body: body,
		},
		{
			Desc:         "unexist user",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				setService.EXPECT().Update(gomock.Any(), username, patch).Return(entity.Settings{}, errorvalues.ErrAccountNotFound)
			},
			Body: body,
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				setService.EXPECT().Update(gomock.Any(), username, patch).Return(entity.Settings{}, errors.New("service error"))
			},
			Body: body,
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         []byte("corrupted"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := withUser(httptest.NewRequest(http.MethodPatch, "/api/v1/settings", bytes.NewReader(tc.Body)))
			serv.UpdateSettings(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusOK {
				var settings entity.Settings
				require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&settings))
				assert.True(t, settings.IsDarkMode)
			}
		})
	}
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/api/v1/settings", bytes.NewReader(body))
		serv.UpdateSettings(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestCreateMood(t *testing.T) {
	ctrl := gomock.NewController(t)
	mService := mocks.NewMockMoodServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		MoodService: mService,
	})
	mood := api.CreateMoodRequest{
		Mood: "happy",
		Note: "sunny day",
	}
	body, err := sonic.ConfigDefault.Marshal(mood)
	require.NoError(t, err)
	req := &service.LogMoodRequest{Mood: mood.Mood, Note: mood.Note}

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				mService.EXPECT().LogMood(gomock.Any(), username, req).Return(&entity.MoodEntry{
					ID:     1,
					Mood:   mood.Mood,
					Note:   mood.Note,
					Date:   entity.StoredTime(time.Now()),
					UserID: username,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				mService.EXPECT().LogMood(gomock.Any(), username, req).Return(nil, errorvalues.ErrValidation)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				mService.EXPECT().LogMood(gomock.Any(), username, req).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/moods", tc.Body))
		serv.CreateMood(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetMoods(t *testing.T) {
	ctrl := gomock.NewController(t)
	mService := mocks.NewMockMoodServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		MoodService: mService,
	})
	moods := make([]*entity.MoodEntry, 0, 5)
	for i := range 5 {
		moods = append(moods, &entity.MoodEntry{
			ID:     int64(5 - i),
			Mood:   "mood_" + strconv.Itoa(i),
			Date:   entity.StoredTime(time.Now().Add(-time.Duration(i) * time.Hour)),
			UserID: username,
		})
	}
	testCases := []struct {
		ExpectedCode       int
		MockPrepFunc       func()
		ExpectedMoodsCount int
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				mService.EXPECT().Journal(gomock.Any(), username).Return(moods, nil)
			},
			ExpectedMoodsCount: 5,
		},
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				mService.EXPECT().Journal(gomock.Any(), username).Return([]*entity.MoodEntry{}, nil)
			},
			ExpectedMoodsCount: 0,
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				mService.EXPECT().Journal(gomock.Any(), username).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/moods", nil))
		serv.GetMoods(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if rr.Result().StatusCode == http.StatusOK {
			var resp api.GetMoodsResponse
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tc.ExpectedMoodsCount, len(resp.Moods))
			assert.Equal(t, username, resp.Username)
		}
	}
}

func TestDeleteMood(t *testing.T) {
	ctrl := gomock.NewController(t)
	mService := mocks.NewMockMoodServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		MoodService: mService,
	})
	var moodID int64 = 1710063000000
	testCases := []struct {
		ExpectedCode int
		PathValue    string
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusNoContent,
			PathValue:    strconv.FormatInt(moodID, 10),
			MockPrepFunc: func() {
				mService.EXPECT().Delete(gomock.Any(), username, moodID).Return(nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			PathValue:    strconv.FormatInt(moodID, 10),
			MockPrepFunc: func() {
				mService.EXPECT().Delete(gomock.Any(), username, moodID).Return(errorvalues.ErrMoodEntryNotFound)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			PathValue:    strconv.FormatInt(moodID, 10),
			MockPrepFunc: func() {
				mService.EXPECT().Delete(gomock.Any(), username, moodID).Return(errorvalues.ErrWrongOwner)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			PathValue:    strconv.FormatInt(moodID, 10),
			MockPrepFunc: func() {
				mService.EXPECT().Delete(gomock.Any(), username, moodID).Return(errors.New("service error"))
			},
		},
		{
			ExpectedCode: http.StatusBadRequest,
			PathValue:    "not-a-number",
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodDelete, "/api/v1/moods/"+tc.PathValue, nil))
		r.SetPathValue("id", tc.PathValue)
		serv.DeleteMood(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestUpdateReflection(t *testing.T) {
	ctrl := gomock.NewController(t)
	mService := mocks.NewMockMoodServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		MoodService: mService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.UpdateReflectionRequest{Reflection: "it passed"})
	require.NoError(t, err)

	mService.EXPECT().UpdateReflection(gomock.Any(), username, int64(7), "it passed").
		Return(&entity.MoodEntry{ID: 7, Mood: "sad", Reflection: "it passed", UserID: username}, nil)
	rr := httptest.NewRecorder()
	r := withUser(httptest.NewRequest(http.MethodPatch, "/api/v1/moods/7/reflection", bytes.NewReader(body)))
	r.SetPathValue("id", "7")
	serv.UpdateReflection(rr, r)
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var entry entity.MoodEntry
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&entry))
	assert.Equal(t, "it passed", entry.Reflection)

	mService.EXPECT().UpdateReflection(gomock.Any(), username, int64(7), "it passed").
		Return(nil, errorvalues.ErrWrongOwner)
	rr = httptest.NewRecorder()
	r = withUser(httptest.NewRequest(http.MethodPatch, "/api/v1/moods/7/reflection", bytes.NewReader(body)))
	r.SetPathValue("id", "7")
	serv.UpdateReflection(rr, r)
	assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
}

func TestQuotes(t *testing.T) {
	serv := api.New(&api.ServicesList{
		Quotes: repository.NewQuotesRepo(),
	})
	rr := httptest.NewRecorder()
	serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/quotes/random", nil))
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var resp api.QuoteRequest
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Quote)

	rr = httptest.NewRecorder()
	serv.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewReader([]byte(`{"quote":"   "}`))))
	assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)

	rr = httptest.NewRecorder()
	serv.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewReader([]byte(`{"quote":"breathe."}`))))
	assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
}
