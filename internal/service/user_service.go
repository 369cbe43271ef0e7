package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/limbo/toki/internal/error_values"
	"github.com/limbo/toki/internal/repository"
	"github.com/limbo/toki/pkg/entity"
)

type UserService struct {
	repo  repository.AccountsRepositoryI
	moods repository.MoodEntriesRepositoryI
}

func NewUserService(accountsRepo repository.AccountsRepositoryI, moodsRepo repository.MoodEntriesRepositoryI) *UserService {
	if accountsRepo == nil || moodsRepo == nil {
		log.Fatal("provided nil repository to user service")
	}
	return &UserService{
		repo:  accountsRepo,
		moods: moodsRepo,
	}
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// isHashed reports whether stored password is a bcrypt hash. Accounts created
// before hashing was introduced keep their password as plain text.
func isHashed(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.Account, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	_, err := us.repo.GetAccount(ctx, req.Username)
	switch {
	case err == nil:
		return nil, errorvalues.ErrAccountExists
	case !errors.Is(err, errorvalues.ErrAccountNotFound):
		return nil, errors.New("accounts repository error: " + err.Error())
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	account := &entity.Account{
		Username: req.Username,
		Password: passwordHash,
		Settings: map[string]any{
			entity.SettingsKey: entity.DefaultSettings(),
		},
	}
	if err = us.repo.SaveAccount(ctx, account); err != nil {
		return nil, errors.New("accounts repository error: " + err.Error())
	}
	return us.GetByName(ctx, req.Username)
}

func (us *UserService) Login(ctx context.Context, username, password string) (*entity.Account, error) {
	if _, err := us.GetByName(ctx, username); err != nil {
		return nil, err
	}
	account, err := us.repo.Authenticate(ctx, username, &password)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAccountNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("accounts repository error: " + err.Error())
	}
	if isHashed(account.Password) {
		return account, nil
	}
	if err = us.upgradePassword(ctx, username, password); err != nil {
		slog.WarnContext(ctx, "legacy password left unhashed",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return account, nil
	}
	return us.GetByName(ctx, username)
}

func (us *UserService) upgradePassword(ctx context.Context, username, password string) error {
	passwordHash, err := Hash(password)
	if err != nil {
		return err
	}
	return us.repo.UpdateAccount(ctx, username, func(a *entity.Account) error {
		a.Password = passwordHash
		return nil
	})
}

func (us *UserService) GetByName(ctx context.Context, username string) (*entity.Account, error) {
	account, err := us.repo.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAccountNotFound) {
			return nil, errorvalues.ErrAccountNotFound
		}
		return nil, errors.New("accounts repository error: " + err.Error())
	}
	return account, nil
}

func (us *UserService) DeleteAccount(ctx context.Context, username, password string) error {
	if _, err := us.Login(ctx, username, password); err != nil {
		return err
	}
	entries, err := us.moods.ListFor(ctx, username)
	if err != nil {
		return errors.New("mood entries repository error: " + err.Error())
	}
	for _, e := range entries {
		if err = us.moods.Delete(ctx, e.ID); err != nil {
			return errors.New("mood entries repository error: " + err.Error())
		}
	}
	if err = us.repo.DeleteAccount(ctx, username); err != nil {
		return errors.New("accounts repository error: " + err.Error())
	}
	return nil
}
