package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	errorvalues "github.com/limbo/toki/internal/error_values"
	"github.com/limbo/toki/pkg/cleanup"
)

type kvEntry struct {
	Namespace string `gorm:"primaryKey;size:64"`
	Key       string `gorm:"primaryKey;size:255"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// SQLiteKV keeps namespaces in a local SQLite file, the on-device storage of the app.
type SQLiteKV struct {
	database *gorm.DB
}

func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// SQLite allows one writer at a time.
	sqlDB.SetMaxOpenConns(1)
	return database, nil
}

func NewSQLiteKV(dbPath string) *SQLiteKV {
	database, err := OpenSQLite(dbPath)
	if err != nil {
		log.Fatal("opening sqlite for key-value storage error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite",
		F: func() error {
			sqlDB, err := database.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
	kv, err := NewSQLiteKVWithDB(database)
	if err != nil {
		log.Fatal(err.Error())
	}
	return kv
}

func NewSQLiteKVWithDB(database *gorm.DB) (*SQLiteKV, error) {
	if err := database.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("%w: migrating kv_entries: %v", errorvalues.ErrStorageFailure, err)
	}
	return &SQLiteKV{database: database}, nil
}

func (kv *SQLiteKV) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	var entry kvEntry
	err := kv.database.WithContext(ctx).
		Where(map[string]any{"namespace": namespace, "key": key}).
		Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorvalues.ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: getting key: %v", errorvalues.ErrStorageFailure, err)
	}
	return entry.Value, nil
}

func (kv *SQLiteKV) Put(ctx context.Context, namespace, key string, value []byte) error {
	entry := kvEntry{
		Namespace: namespace,
		Key:       key,
		Value:     value,
	}
	err := kv.database.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("%w: putting key: %v", errorvalues.ErrStorageFailure, err)
	}
	return nil
}

func (kv *SQLiteKV) Delete(ctx context.Context, namespace, key string) error {
	err := kv.database.WithContext(ctx).
		Where(map[string]any{"namespace": namespace, "key": key}).
		Delete(&kvEntry{}).Error
	if err != nil {
		return fmt.Errorf("%w: deleting key: %v", errorvalues.ErrStorageFailure, err)
	}
	return nil
}

func (kv *SQLiteKV) All(ctx context.Context, namespace string) (map[string][]byte, error) {
	entries := make([]kvEntry, 0)
	err := kv.database.WithContext(ctx).
		Where(map[string]any{"namespace": namespace}).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: listing namespace: %v", errorvalues.ErrStorageFailure, err)
	}
	result := make(map[string][]byte, len(entries))
	for _, e := range entries {
		result[e.Key] = e.Value
	}
	return result, nil
}

func (kv *SQLiteKV) Clear(ctx context.Context, namespace string) error {
	err := kv.database.WithContext(ctx).
		Where(map[string]any{"namespace": namespace}).
		Delete(&kvEntry{}).Error
	if err != nil {
		return fmt.Errorf("%w: clearing namespace: %v", errorvalues.ErrStorageFailure, err)
	}
	return nil
}
