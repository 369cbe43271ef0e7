package service

import (
	"context"
	"errors"
	"log"
	"strings"

	errorvalues "github.com/limbo/toki/internal/error_values"
	"github.com/limbo/toki/internal/repository"
	"github.com/limbo/toki/pkg/entity"
)

type MoodService struct {
	repo repository.MoodEntriesRepositoryI
	ids  *entity.IDGenerator
}

func NewMoodService(moodsRepo repository.MoodEntriesRepositoryI, ids *entity.IDGenerator) *MoodService {
	if moodsRepo == nil {
		log.Fatal("provided nil moodsRepo")
	}
	if ids == nil {
		ids = entity.NewIDGenerator()
	}
	return &MoodService{
		repo: moodsRepo,
		ids:  ids,
	}
}

func (ms *MoodService) LogMood(ctx context.Context, username string, req *LogMoodRequest) (*entity.MoodEntry, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	req.Mood = strings.TrimSpace(req.Mood)
	req.Note = strings.TrimSpace(req.Note)
	req.Reflection = strings.TrimSpace(req.Reflection)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	entry := entity.NewMoodEntry(ms.ids, username, req.Mood, req.Note, req.Reflection)
	if err := ms.repo.Save(ctx, &entry); err != nil {
		return nil, errors.New("mood entries repository error: " + err.Error())
	}
	return &entry, nil
}

func (ms *MoodService) Journal(ctx context.Context, username string) ([]*entity.MoodEntry, error) {
	entries, err := ms.repo.ListFor(ctx, username)
	if err != nil {
		return nil, errors.New("mood entries repository error: " + err.Error())
	}
	return entries, nil
}

func (ms *MoodService) Latest(ctx context.Context, username string) (*entity.MoodEntry, error) {
	entry, err := ms.repo.LatestFor(ctx, username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMoodEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("mood entries repository error: " + err.Error())
	}
	return entry, nil
}

// Get returns entry only to its owner. Entries of other users look absent.
func (ms *MoodService) Get(ctx context.Context, username string, id int64) (*entity.MoodEntry, error) {
	entry, err := ms.owned(ctx, username, id)
	if errors.Is(err, errorvalues.ErrWrongOwner) {
		return nil, errorvalues.ErrMoodEntryNotFound
	}
	return entry, err
}

func (ms *MoodService) UpdateReflection(ctx context.Context, username string, id int64, reflection string) (*entity.MoodEntry, error) {
	entry, err := ms.owned(ctx, username, id)
	if err != nil {
		return nil, err
	}
	updated := entry.WithReflection(strings.TrimSpace(reflection))
	if err = ms.repo.Update(ctx, &updated); err != nil {
		return nil, errors.New("mood entries repository error: " + err.Error())
	}
	return &updated, nil
}

func (ms *MoodService) Delete(ctx context.Context, username string, id int64) error {
	if _, err := ms.owned(ctx, username, id); err != nil {
		return err
	}
	if err := ms.repo.Delete(ctx, id); err != nil {
		return errors.New("mood entries repository error: " + err.Error())
	}
	return nil
}

func (ms *MoodService) ClearAll(ctx context.Context) error {
	if err := ms.repo.ClearAll(ctx); err != nil {
		return errors.New("mood entries repository error: " + err.Error())
	}
	return nil
}

func (ms *MoodService) owned(ctx context.Context, username string, id int64) (*entity.MoodEntry, error) {
	entry, err := ms.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMoodEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("mood entries repository error: " + err.Error())
	}
	if entry.UserID != username {
		return nil, errorvalues.ErrWrongOwner
	}
	return entry, nil
}
