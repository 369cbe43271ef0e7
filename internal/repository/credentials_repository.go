package repository

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/toki/internal/error_values"
)

const (
	CredentialsNamespace = "user_prefs"
	rememberedUserKey    = "username"
	rememberedTokenKey   = "token"
)

// CredentialsRepository remembers the last login for automatic sign-in.
// Only a signed session token is kept, never the password.
type CredentialsRepository struct {
	kv KV
}

func NewCredentialsRepo(kv KV) *CredentialsRepository {
	if kv == nil {
		log.Fatal("on credentials repository provided nil key-value storage")
	}
	return &CredentialsRepository{
		kv: kv,
	}
}

func (cr *CredentialsRepository) Remember(ctx context.Context, username, token string) error {
	if err := cr.kv.Put(ctx, CredentialsNamespace, rememberedUserKey, []byte(username)); err != nil {
		return err
	}
	return cr.kv.Put(ctx, CredentialsNamespace, rememberedTokenKey, []byte(token))
}

func (cr *CredentialsRepository) Recall(ctx context.Context) (string, string, error) {
	username, err := cr.kv.Get(ctx, CredentialsNamespace, rememberedUserKey)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKeyNotFound) {
			return "", "", errorvalues.ErrNothingRemembered
		}
		return "", "", err
	}
	token, err := cr.kv.Get(ctx, CredentialsNamespace, rememberedTokenKey)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKeyNotFound) {
			return "", "", errorvalues.ErrNothingRemembered
		}
		return "", "", err
	}
	return string(username), string(token), nil
}

func (cr *CredentialsRepository) IsRemembered(ctx context.Context) bool {
	_, _, err := cr.Recall(ctx)
	return err == nil
}

func (cr *CredentialsRepository) Forget(ctx context.Context) error {
	return cr.kv.Clear(ctx, CredentialsNamespace)
}
