package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/limbo/toki/internal/error_values"
	"github.com/limbo/toki/pkg/cleanup"
)

// PgKV keeps namespaces in a single PostgreSQL table.
type PgKV struct {
	conn PgConnection
}

func NewPgKV(cfg DBConfig) *PgKV {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for key-value storage error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for key-value storage: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	kv := &PgKV{
		conn: pool,
	}
	if err = kv.Migrate(context.Background()); err != nil {
		log.Fatal(err.Error())
	}
	return kv
}

func NewPgKVWithConn(conn PgConnection) *PgKV {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for key-value storage: " + err.Error())
	}
	return &PgKV{
		conn: conn,
	}
}

func (kv *PgKV) Migrate(ctx context.Context) error {
	_, err := kv.conn.Exec(ctx, `CREATE TABLE IF NOT EXISTS kv_entries (
		namespace TEXT NOT NULL,
		key TEXT NOT NULL,
		value BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (namespace, key)
	);`)
	if err != nil {
		return fmt.Errorf("%w: creating kv_entries table: %v", errorvalues.ErrStorageFailure, err)
	}
	return nil
}

func (kv *PgKV) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	var value []byte
	row := kv.conn.QueryRow(ctx, `SELECT value FROM kv_entries WHERE namespace = $1 AND key = $2;`, namespace, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: getting key: %v", errorvalues.ErrStorageFailure, err)
	}
	return value, nil
}

func (kv *PgKV) Put(ctx context.Context, namespace, key string, value []byte) error {
	_, err := kv.conn.Exec(ctx, `INSERT INTO kv_entries (namespace, key, value) VALUES ($1, $2, $3)
		ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`,
		namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("%w: putting key: %v", errorvalues.ErrStorageFailure, err)
	}
	return nil
}

func (kv *PgKV) Delete(ctx context.Context, namespace, key string) error {
	_, err := kv.conn.Exec(ctx, `DELETE FROM kv_entries WHERE namespace = $1 AND key = $2;`, namespace, key)
	if err != nil {
		return fmt.Errorf("%w: deleting key: %v", errorvalues.ErrStorageFailure, err)
	}
	return nil
}

func (kv *PgKV) All(ctx context.Context, namespace string) (map[string][]byte, error) {
	rows, err := kv.conn.Query(ctx, `SELECT key, value FROM kv_entries WHERE namespace = $1;`, namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: listing namespace: %v", errorvalues.ErrStorageFailure, err)
	}
	defer rows.Close()
	result := make(map[string][]byte)
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: scanning pair: %v", errorvalues.ErrStorageFailure, err)
		}
		result[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: unexpected error after scanning: %v", errorvalues.ErrStorageFailure, err)
	}
	return result, nil
}

func (kv *PgKV) Clear(ctx context.Context, namespace string) error {
	_, err := kv.conn.Exec(ctx, `DELETE FROM kv_entries WHERE namespace = $1;`, namespace)
	if err != nil {
		return fmt.Errorf("%w: clearing namespace: %v", errorvalues.ErrStorageFailure, err)
	}
	return nil
}
