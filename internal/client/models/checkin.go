package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownMood = errors.New("unknown mood")

// Mood is the closed set of answers to the end-of-day check-in.
type Mood string

const (
	MoodProductive Mood = "Productive"
	MoodTired      Mood = "Tired"
	MoodStressful  Mood = "Stressful"
	MoodEnergetic  Mood = "Energetic"
	MoodFocused    Mood = "Focused"
)

var moods = []Mood{MoodProductive, MoodTired, MoodStressful, MoodEnergetic, MoodFocused}

// Moods lists the selectable moods in display order.
func Moods() []Mood {
	return append([]Mood(nil), moods...)
}

func (m Mood) Valid() bool {
	for _, known := range moods {
		if m == known {
			return true
		}
	}
	return false
}

func (m Mood) String() string { return string(m) }

// ParseMood matches s against the known moods, ignoring case and
// surrounding spaces.
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	for _, m := range moods {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMood, s)
}

// CheckIn is the body of POST /daily-checkin/.
type CheckIn struct {
	Mood  Mood   `json:"mood"`
	Notes string `json:"notes"`
	Date  string `json:"date"`
}

// CheckInRecord is the service acknowledgement of a check-in.
type CheckInRecord struct {
	ID        int64     `json:"id"`
	Mood      Mood      `json:"mood"`
	Notes     string    `json:"notes"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
