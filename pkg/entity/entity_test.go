package entity_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/toki/pkg/entity"
)

func TestIDGenerator(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	ids := entity.NewIDGeneratorWithClock(func() time.Time { return now })

	t.Run("same millisecond", func(t *testing.T) {
		first := ids.Next()
		second := ids.Next()
		assert.Equal(t, int64(1_700_000_000_000), first)
		assert.Equal(t, first+1, second)
	})
	t.Run("clock moves forward", func(t *testing.T) {
		now = now.Add(time.Second)
		assert.Equal(t, now.UnixMilli(), ids.Next())
	})
	t.Run("clock moves backward", func(t *testing.T) {
		last := ids.Next()
		now = now.Add(-time.Hour)
		assert.Greater(t, ids.Next(), last)
	})
	t.Run("seed", func(t *testing.T) {
		ids.Seed(1_900_000_000_000)
		assert.Equal(t, int64(1_900_000_000_001), ids.Next())
		ids.Seed(5)
		assert.Equal(t, int64(1_900_000_000_002), ids.Next())
	})
}

func TestIDGeneratorConcurrent(t *testing.T) {
	ids := entity.NewIDGenerator()
	const workers, perWorker = 8, 200
	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{})
		wg   sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, perWorker)
			for range perWorker {
				local = append(local, ids.Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*perWorker)
}

func TestNewMoodEntry(t *testing.T) {
	ids := entity.NewIDGenerator()
	before := time.Now().Add(-time.Second)
	entry := entity.NewMoodEntry(ids, "alice", "happy", "note", "")
	assert.NotZero(t, entry.ID)
	assert.Equal(t, "alice", entry.UserID)
	assert.Equal(t, time.UTC, entry.Date.Location())
	assert.Zero(t, entry.Date.Nanosecond())
	assert.True(t, entry.Date.After(before))

	reflected := entry.WithReflection("felt better later")
	assert.Equal(t, "felt better later", reflected.Reflection)
	assert.Empty(t, entry.Reflection)
	assert.Equal(t, entry.ID, reflected.ID)
}

func TestSettings(t *testing.T) {
	defaults := entity.DefaultSettings()
	assert.False(t, defaults.IsDarkMode)
	assert.True(t, defaults.IsAnimationEnabled)
	assert.Equal(t, 80.0, defaults.SoundVolume)
	assert.Equal(t, 0, defaults.ReminderInterval)
	assert.False(t, defaults.RemindersEnabled())

	changed := defaults.WithDarkMode(true).WithAnimation(false).WithSoundVolume(35).WithReminderInterval(3)
	assert.Equal(t, entity.Settings{
		IsDarkMode:         true,
		IsAnimationEnabled: false,
		SoundVolume:        35,
		ReminderInterval:   3,
	}, changed)
	assert.True(t, changed.RemindersEnabled())
	assert.Equal(t, entity.DefaultSettings(), defaults)

	for _, hours := range []int{0, 1, 2, 3, 6, 12, 24} {
		assert.True(t, entity.IsReminderInterval(hours), hours)
	}
	for _, hours := range []int{-1, 4, 5, 48} {
		assert.False(t, entity.IsReminderInterval(hours), hours)
	}
}

func TestAccountPreferences(t *testing.T) {
	testCases := []struct {
		Desc     string
		Settings map[string]any
		Expected entity.Settings
	}{
		{
			Desc:     "no settings",
			Settings: nil,
			Expected: entity.DefaultSettings(),
		},
		{
			Desc:     "typed settings",
			Settings: map[string]any{entity.SettingsKey: entity.DefaultSettings().WithDarkMode(true)},
			Expected: entity.DefaultSettings().WithDarkMode(true),
		},
		{
			Desc: "decoded settings",
			Settings: map[string]any{entity.SettingsKey: map[string]any{
				"isDarkMode":       true,
				"soundVolume":      float64(10),
				"reminderInterval": float64(12),
			}},
			Expected: entity.DefaultSettings().WithDarkMode(true).WithSoundVolume(10).WithReminderInterval(12),
		},
		{
			Desc:     "malformed settings",
			Settings: map[string]any{entity.SettingsKey: "dark"},
			Expected: entity.DefaultSettings(),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			account := entity.Account{Username: "alice", Settings: tc.Settings}
			assert.Equal(t, tc.Expected, account.Preferences())
		})
	}
}

func TestAccountClone(t *testing.T) {
	account := &entity.Account{Username: "alice", Password: "pw1"}
	clone := account.Clone()
	require.NotNil(t, clone.Settings)
	clone.Settings["x"] = 1
	clone.Password = "other"
	assert.Nil(t, account.Settings)
	assert.Equal(t, "pw1", account.Password)
}
