package repository

import (
	"context"
	"errors"
	"log"
	"maps"
	"slices"

	errorvalues "github.com/limbo/toki/internal/error_values"
	"github.com/limbo/toki/pkg/entity"
)

const (
	AccountsNamespace = "user_data"
	accountsKey       = "users"
)

// AccountsRepository keeps every account in one ordered document. Each
// mutation reads the whole list, changes it and writes it back.
type AccountsRepository struct {
	kv     KV
	strict bool
	queue  *WriteQueue
}

func NewAccountsRepo(kv KV, opts Options) *AccountsRepository {
	if kv == nil {
		log.Fatal("on accounts repository provided nil key-value storage")
	}
	return &AccountsRepository{
		kv:     kv,
		strict: opts.StrictReads,
		queue:  opts.Queue,
	}
}

func (ar *AccountsRepository) SaveAccount(ctx context.Context, account *entity.Account) error {
	if account == nil {
		return errors.New("account is nil")
	}
	return ar.queue.Do(AccountsNamespace, func() error {
		accounts, err := ar.load(ctx)
		if err != nil {
			return err
		}
		accounts = slices.DeleteFunc(accounts, func(a *entity.Account) bool {
			return a.Username == account.Username
		})
		accounts = append(accounts, account.Clone())
		return ar.store(ctx, accounts)
	})
}

func (ar *AccountsRepository) GetAccount(ctx context.Context, username string) (*entity.Account, error) {
	accounts, err := ar.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, errorvalues.ErrAccountNotFound
}

func (ar *AccountsRepository) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	return ar.load(ctx)
}

func (ar *AccountsRepository) DeleteAccount(ctx context.Context, username string) error {
	return ar.queue.Do(AccountsNamespace, func() error {
		accounts, err := ar.load(ctx)
		if err != nil {
			return err
		}
		left := slices.DeleteFunc(slices.Clone(accounts), func(a *entity.Account) bool {
			return a.Username == username
		})
		if len(left) == len(accounts) {
			return nil
		}
		return ar.store(ctx, left)
	})
}

func (ar *AccountsRepository) Authenticate(ctx context.Context, username string, password *string) (*entity.Account, error) {
	accounts, err := ar.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Username == username && (password == nil || passwordMatches(a.Password, *password)) {
			return a, nil
		}
	}
	return nil, errorvalues.ErrAccountNotFound
}

func (ar *AccountsRepository) MergeSettings(ctx context.Context, username string, data map[string]any) error {
	err := ar.UpdateAccount(ctx, username, func(a *entity.Account) error {
		maps.Copy(a.Settings, data)
		return nil
	})
	if errors.Is(err, errorvalues.ErrAccountNotFound) {
		return nil
	}
	return err
}

func (ar *AccountsRepository) UpdateAccount(ctx context.Context, username string, fn func(*entity.Account) error) error {
	return ar.queue.Do(AccountsNamespace, func() error {
		accounts, err := ar.load(ctx)
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(accounts, func(a *entity.Account) bool {
			return a.Username == username
		})
		if idx == -1 {
			return errorvalues.ErrAccountNotFound
		}
		updated := accounts[idx].Clone()
		if err = fn(updated); err != nil {
			return err
		}
		// Usernames are immutable.
		updated.Username = username
		accounts[idx] = updated
		return ar.store(ctx, accounts)
	})
}

func (ar *AccountsRepository) load(ctx context.Context) ([]*entity.Account, error) {
	data, err := ar.kv.Get(ctx, AccountsNamespace, accountsKey)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKeyNotFound) {
			return []*entity.Account{}, nil
		}
		return ar.unreadable(ctx, err)
	}
	var accounts []*entity.Account
	if err = decode(data, &accounts); err != nil {
		return ar.unreadable(ctx, err)
	}
	result := make([]*entity.Account, 0, len(accounts))
	for _, a := range accounts {
		if a == nil {
			continue
		}
		if a.Settings == nil {
			a.Settings = make(map[string]any)
		}
		result = append(result, a)
	}
	return result, nil
}

func (ar *AccountsRepository) unreadable(ctx context.Context, err error) ([]*entity.Account, error) {
	if err = readFailure(ctx, ar.strict, AccountsNamespace, accountsKey, err); err != nil {
		return nil, err
	}
	return []*entity.Account{}, nil
}

func (ar *AccountsRepository) store(ctx context.Context, accounts []*entity.Account) error {
	data, err := encode(accounts)
	if err != nil {
		return err
	}
	return ar.kv.Put(ctx, AccountsNamespace, accountsKey, data)
}
