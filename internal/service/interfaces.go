//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package service

import (
	"context"

	"github.com/limbo/toki/pkg/entity"
)

type RegisterRequest struct {
	Username string `validate:"required,notblank,max=100"`
	Password string `validate:"required,notblank,max=72"`
}

type LogMoodRequest struct {
	Mood       string `validate:"required,notblank,max=64"`
	Note       string `validate:"max=2000"`
	Reflection string `validate:"max=2000"`
}

// SettingsPatch carries only the preferences to change. Nil fields are kept.
type SettingsPatch struct {
	IsDarkMode         *bool    `json:"isDarkMode,omitempty"`
	IsAnimationEnabled *bool    `json:"isAnimationEnabled,omitempty"`
	SoundVolume        *float64 `json:"soundVolume,omitempty" validate:"omitnil,gte=0,lte=100"`
	ReminderInterval   *int     `json:"reminderInterval,omitempty" validate:"omitnil,reminder_interval"`
}

type UserServiceI interface {
	// Validates credentials, stores new account with hashed password
	Register(ctx context.Context, req *RegisterRequest) (*entity.Account, error)
	// Compares given credentials. If ok, gives back account's data
	Login(ctx context.Context, username, password string) (*entity.Account, error)
	GetByName(ctx context.Context, username string) (*entity.Account, error)
	// Deletes account and every mood entry of it after password check
	DeleteAccount(ctx context.Context, username, password string) error
}

type SettingsServiceI interface {
	// Returns freshly read preferences of user
	Get(ctx context.Context, username string) (entity.Settings, error)
	// Validates patch and applies it to the current preferences
	Update(ctx context.Context, username string, patch SettingsPatch) (entity.Settings, error)
}

type MoodServiceI interface {
	// Creates new mood entry owned by username
	LogMood(ctx context.Context, username string, req *LogMoodRequest) (*entity.MoodEntry, error)
	// Lists user's entries, most recent first
	Journal(ctx context.Context, username string) ([]*entity.MoodEntry, error)
	Latest(ctx context.Context, username string) (*entity.MoodEntry, error)
	Get(ctx context.Context, username string, id int64) (*entity.MoodEntry, error)
	UpdateReflection(ctx context.Context, username string, id int64, reflection string) (*entity.MoodEntry, error)
	Delete(ctx context.Context, username string, id int64) error
	// Deletes every entry of every user
	ClearAll(ctx context.Context) error
}

type SessionServiceI interface {
	// Remembers login for automatic sign-in
	Remember(ctx context.Context, username, token string) error
	// Returns remembered login or errorvalues.ErrNothingRemembered
	Resume(ctx context.Context) (username string, token string, err error)
	Forget(ctx context.Context) error
}
