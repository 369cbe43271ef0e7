package repository

import (
	"cmp"
	"context"
	"errors"
	"log"
	"slices"
	"strconv"

	errorvalues "github.com/limbo/toki/internal/error_values"
	"github.com/limbo/toki/pkg/entity"
)

const MoodEntriesNamespace = "mood_data"

// MoodEntriesRepository stores every entry in its own slot keyed by id.
type MoodEntriesRepository struct {
	kv     KV
	strict bool
}

func NewMoodEntriesRepo(kv KV, opts Options) *MoodEntriesRepository {
	if kv == nil {
		log.Fatal("on mood entries repository provided nil key-value storage")
	}
	return &MoodEntriesRepository{
		kv:     kv,
		strict: opts.StrictReads,
	}
}

func moodEntryKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (mr *MoodEntriesRepository) Save(ctx context.Context, entry *entity.MoodEntry) error {
	if entry == nil {
		return errors.New("mood entry is nil")
	}
	stored := *entry
	stored.Date = entity.StoredTime(entry.Date)
	data, err := encode(&stored)
	if err != nil {
		return err
	}
	return mr.kv.Put(ctx, MoodEntriesNamespace, moodEntryKey(entry.ID), data)
}

func (mr *MoodEntriesRepository) Get(ctx context.Context, id int64) (*entity.MoodEntry, error) {
	key := moodEntryKey(id)
	data, err := mr.kv.Get(ctx, MoodEntriesNamespace, key)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKeyNotFound) {
			return nil, errorvalues.ErrMoodEntryNotFound
		}
		return nil, mr.unreadable(ctx, key, err)
	}
	var entry entity.MoodEntry
	if err = decode(data, &entry); err != nil {
		return nil, mr.unreadable(ctx, key, err)
	}
	return &entry, nil
}

func (mr *MoodEntriesRepository) ListAll(ctx context.Context) ([]*entity.MoodEntry, error) {
	pairs, err := mr.kv.All(ctx, MoodEntriesNamespace)
	if err != nil {
		if err = readFailure(ctx, mr.strict, MoodEntriesNamespace, "*", err); err != nil {
			return nil, err
		}
		return []*entity.MoodEntry{}, nil
	}
	entries := make([]*entity.MoodEntry, 0, len(pairs))
	for key, data := range pairs {
		var entry entity.MoodEntry
		if err = decode(data, &entry); err != nil {
			if err = readFailure(ctx, mr.strict, MoodEntriesNamespace, key, err); err != nil {
				return nil, err
			}
			continue
		}
		entries = append(entries, &entry)
	}
	sortByDateDesc(entries)
	return entries, nil
}

func (mr *MoodEntriesRepository) ListFor(ctx context.Context, userID string) ([]*entity.MoodEntry, error) {
	entries, err := mr.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(entries, func(e *entity.MoodEntry) bool {
		return e.UserID != userID
	}), nil
}

func (mr *MoodEntriesRepository) LatestFor(ctx context.Context, userID string) (*entity.MoodEntry, error) {
	entries, err := mr.ListFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errorvalues.ErrMoodEntryNotFound
	}
	return entries[0], nil
}

// MaxID returns the largest id among stored keys, 0 when there are none.
// Slots that no longer decode still count, so new ids never land on them.
func (mr *MoodEntriesRepository) MaxID(ctx context.Context) (int64, error) {
	pairs, err := mr.kv.All(ctx, MoodEntriesNamespace)
	if err != nil {
		return 0, err
	}
	var maxID int64
	for key := range pairs {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		maxID = max(maxID, id)
	}
	return maxID, nil
}

func (mr *MoodEntriesRepository) Update(ctx context.Context, entry *entity.MoodEntry) error {
	return mr.Save(ctx, entry)
}

func (mr *MoodEntriesRepository) Delete(ctx context.Context, id int64) error {
	return mr.kv.Delete(ctx, MoodEntriesNamespace, moodEntryKey(id))
}

func (mr *MoodEntriesRepository) ClearAll(ctx context.Context) error {
	return mr.kv.Clear(ctx, MoodEntriesNamespace)
}

// In fail-soft mode an unreadable slot looks like a missing one.
func (mr *MoodEntriesRepository) unreadable(ctx context.Context, key string, err error) error {
	if err = readFailure(ctx, mr.strict, MoodEntriesNamespace, key, err); err != nil {
		return err
	}
	return errorvalues.ErrMoodEntryNotFound
}

// Most recent first. Entries sharing a timestamp are ordered by id, newest first.
func sortByDateDesc(entries []*entity.MoodEntry) {
	slices.SortFunc(entries, func(a, b *entity.MoodEntry) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}
