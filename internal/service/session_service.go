package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/toki/internal/error_values"
	"github.com/limbo/toki/internal/repository"
)

type SessionService struct {
	repo repository.CredentialsRepositoryI
}

func NewSessionService(credentialsRepo repository.CredentialsRepositoryI) *SessionService {
	if credentialsRepo == nil {
		log.Fatal("provided nil credentialsRepo")
	}
	return &SessionService{
		repo: credentialsRepo,
	}
}

func (ss *SessionService) Remember(ctx context.Context, username, token string) error {
	if err := ss.repo.Remember(ctx, username, token); err != nil {
		return errors.New("credentials repository error: " + err.Error())
	}
	return nil
}

func (ss *SessionService) Resume(ctx context.Context) (string, string, error) {
	username, token, err := ss.repo.Recall(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNothingRemembered) {
			return "", "", err
		}
		return "", "", errors.New("credentials repository error: " + err.Error())
	}
	return username, token, nil
}

func (ss *SessionService) Forget(ctx context.Context) error {
	if err := ss.repo.Forget(ctx); err != nil {
		return errors.New("credentials repository error: " + err.Error())
	}
	return nil
}
