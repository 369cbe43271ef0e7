package entity

import (
	"maps"
	"time"

	"github.com/bytedance/sonic"
)

// SettingsKey is the well-known key of the account settings bag holding Settings.
const SettingsKey = "settings"

type Account struct {
	Username string         `json:"username"`
	Password string         `json:"password"`
	Settings map[string]any `json:"settings"`
}

// Clone returns a detached copy. Nested values of the settings bag are shared,
// they are treated as read-only after decoding.
func (a *Account) Clone() *Account {
	c := *a
	c.Settings = maps.Clone(a.Settings)
	if c.Settings == nil {
		c.Settings = make(map[string]any)
	}
	return &c
}

// Preferences decodes the settings bag entry into Settings.
// Missing or malformed entries yield the defaults.
func (a *Account) Preferences() Settings {
	raw, ok := a.Settings[SettingsKey]
	if !ok || raw == nil {
		return DefaultSettings()
	}
	if s, ok := raw.(Settings); ok {
		return s
	}
	data, err := sonic.ConfigStd.Marshal(raw)
	if err != nil {
		return DefaultSettings()
	}
	s := DefaultSettings()
	if err = sonic.ConfigStd.Unmarshal(data, &s); err != nil {
		return DefaultSettings()
	}
	return s
}

type MoodEntry struct {
	ID         int64     `json:"id"`
	Mood       string    `json:"mood"`
	Note       string    `json:"note"`
	Reflection string    `json:"reflection"`
	Date       time.Time `json:"date"`
	UserID     string    `json:"userId"`
}

// NewMoodEntry stamps the entry with the next id and the current time
// truncated to the stored precision.
func NewMoodEntry(ids *IDGenerator, userID, mood, note, reflection string) MoodEntry {
	return MoodEntry{
		ID:         ids.Next(),
		Mood:       mood,
		Note:       note,
		Reflection: reflection,
		Date:       StoredTime(time.Now()),
		UserID:     userID,
	}
}

func (e MoodEntry) WithReflection(reflection string) MoodEntry {
	e.Reflection = reflection
	return e
}
