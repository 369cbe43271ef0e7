package entity

import "slices"

const (
	DefaultSoundVolume      float64 = 80
	DefaultReminderInterval         = 0
)

// ReminderIntervals lists the reminder periods in hours the app offers. 0 disables reminders.
var ReminderIntervals = []int{0, 1, 2, 3, 6, 12, 24}

// Settings is an immutable preference bundle. The With* methods return
// modified copies and never touch the receiver.
type Settings struct {
	IsDarkMode         bool    `json:"isDarkMode"`
	IsAnimationEnabled bool    `json:"isAnimationEnabled"`
	SoundVolume        float64 `json:"soundVolume" validate:"gte=0,lte=100"`
	ReminderInterval   int     `json:"reminderInterval" validate:"reminder_interval"`
}

func DefaultSettings() Settings {
	return Settings{
		IsDarkMode:         false,
		IsAnimationEnabled: true,
		SoundVolume:        DefaultSoundVolume,
		ReminderInterval:   DefaultReminderInterval,
	}
}

func (s Settings) WithDarkMode(on bool) Settings {
	s.IsDarkMode = on
	return s
}

func (s Settings) WithAnimation(on bool) Settings {
	s.IsAnimationEnabled = on
	return s
}

func (s Settings) WithSoundVolume(volume float64) Settings {
	s.SoundVolume = volume
	return s
}

func (s Settings) WithReminderInterval(hours int) Settings {
	s.ReminderInterval = hours
	return s
}

// RemindersEnabled reports whether a periodic reminder is configured.
func (s Settings) RemindersEnabled() bool {
	return s.ReminderInterval > 0
}

func IsReminderInterval(hours int) bool {
	return slices.Contains(ReminderIntervals, hours)
}
