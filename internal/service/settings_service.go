package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/toki/internal/error_values"
	"github.com/limbo/toki/internal/repository"
	"github.com/limbo/toki/pkg/entity"
)

// SettingsService never caches preferences. Every call starts from the
// stored account.
type SettingsService struct {
	repo repository.AccountsRepositoryI
}

func NewSettingsService(accountsRepo repository.AccountsRepositoryI) *SettingsService {
	if accountsRepo == nil {
		log.Fatal("provided nil accountsRepo")
	}
	return &SettingsService{
		repo: accountsRepo,
	}
}

func (ss *SettingsService) Get(ctx context.Context, username string) (entity.Settings, error) {
	account, err := ss.repo.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAccountNotFound) {
			return entity.Settings{}, err
		}
		return entity.Settings{}, errors.New("accounts repository error: " + err.Error())
	}
	return account.Preferences(), nil
}

func (ss *SettingsService) Update(ctx context.Context, username string, patch SettingsPatch) (entity.Settings, error) {
	if err := validateStruct(patch); err != nil {
		return entity.Settings{}, err
	}
	var updated entity.Settings
	err := ss.repo.UpdateAccount(ctx, username, func(a *entity.Account) error {
		updated = patch.apply(a.Preferences())
		a.Settings[entity.SettingsKey] = updated
		return nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrAccountNotFound) {
			return entity.Settings{}, err
		}
		return entity.Settings{}, errors.New("accounts repository error: " + err.Error())
	}
	return updated, nil
}

func (p SettingsPatch) apply(s entity.Settings) entity.Settings {
	if p.IsDarkMode != nil {
		s = s.WithDarkMode(*p.IsDarkMode)
	}
	if p.IsAnimationEnabled != nil {
		s = s.WithAnimation(*p.IsAnimationEnabled)
	}
	if p.SoundVolume != nil {
		s = s.WithSoundVolume(*p.SoundVolume)
	}
	if p.ReminderInterval != nil {
		s = s.WithReminderInterval(*p.ReminderInterval)
	}
	return s
}
