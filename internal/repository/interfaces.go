package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/toki/pkg/entity"
)

// KV is the namespaced key-value primitive every store persists through.
type KV interface {
	// Returns value stored under key or errorvalues.ErrKeyNotFound
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	// Stores value under key, replacing previous one
	Put(ctx context.Context, namespace, key string, value []byte) error
	// Removes key. Absent key is not an error
	Delete(ctx context.Context, namespace, key string) error
	// Returns every pair of namespace
	All(ctx context.Context, namespace string) (map[string][]byte, error)
	// Removes every pair of namespace
	Clear(ctx context.Context, namespace string) error
}

type AccountsRepositoryI interface {
	// Upserts account by username. Whole collection is rewritten
	SaveAccount(ctx context.Context, account *entity.Account) error
	// Looks up account by username
	GetAccount(ctx context.Context, username string) (*entity.Account, error)
	// Lists accounts in persisted order
	ListAccounts(ctx context.Context) ([]*entity.Account, error)
	// Deletes account. No-op if absent
	DeleteAccount(ctx context.Context, username string) error
	// Finds account by username and, if password is not nil, checks it against
	// the stored bcrypt hash or legacy plain text
	Authenticate(ctx context.Context, username string, password *string) (*entity.Account, error)
	// Merges data into account's settings bag. No-op if account is absent
	MergeSettings(ctx context.Context, username string, data map[string]any) error
	// Applies fn to the freshest copy of account and persists result
	UpdateAccount(ctx context.Context, username string, fn func(*entity.Account) error) error
}

type MoodEntriesRepositoryI interface {
	// Stores entry under its id, overwriting previous version
	Save(ctx context.Context, entry *entity.MoodEntry) error
	// Searches entry with given id
	Get(ctx context.Context, id int64) (*entity.MoodEntry, error)
	// Lists every entry, most recent first
	ListAll(ctx context.Context) ([]*entity.MoodEntry, error)
	// Lists entries owned by userID, most recent first
	ListFor(ctx context.Context, userID string) ([]*entity.MoodEntry, error)
	// Returns most recent entry of userID
	LatestFor(ctx context.Context, userID string) (*entity.MoodEntry, error)
	// Same as Save
	Update(ctx context.Context, entry *entity.MoodEntry) error
	// Deletes entry with id. No-op if absent
	Delete(ctx context.Context, id int64) error
	// Deletes every entry
	ClearAll(ctx context.Context) error
}

type CredentialsRepositoryI interface {
	// Remembers last login
	Remember(ctx context.Context, username, token string) error
	// Returns remembered login or errorvalues.ErrNothingRemembered
	Recall(ctx context.Context) (username string, token string, err error)
	IsRemembered(ctx context.Context) bool
	// Forgets remembered login
	Forget(ctx context.Context) error
}

type QuotesRepositoryI interface {
	// Returns pseudo-random quote
	Random() string
	// Appends quote for the lifetime of the process
	Add(quote string) bool
	All() []string
}

// Options tune read and write behavior of the stores.
type Options struct {
	// StrictReads makes unreadable documents surface as errorvalues.ErrStorageFailure
	// instead of being treated as empty.
	StrictReads bool
	// Queue serializes read-modify-write cycles per namespace. Nil disables it.
	Queue *WriteQueue
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
