package models

import (
	"fmt"
	"time"
)

// timestampLayouts covers the shapes the backend emits: RFC3339 with and
// without a timezone suffix.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses a backend timestamp string.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// SleepLog records one night's sleep. DreamID is an optional weak
// reference to a Dream; no referential integrity is enforced client-side.
type SleepLog struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	DreamID   int64  `json:"dream_id,omitempty"`
	SleepTime string `json:"sleep_time"`
	WakeTime  string `json:"wake_time"`
	Quality   int    `json:"quality"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Duration returns the span between sleep and wake time. When the wake
// time is not after the sleep time the span is assumed to cross midnight
// and 24 hours are added. Spans of a full day or longer cannot be
// expressed; a night is logged as a single record.
func (s *SleepLog) Duration() (time.Duration, error) {
	sleep, err := ParseTimestamp(s.SleepTime)
	if err != nil {
		return 0, fmt.Errorf("sleep_time: %w", err)
	}
	wake, err := ParseTimestamp(s.WakeTime)
	if err != nil {
		return 0, fmt.Errorf("wake_time: %w", err)
	}

	d := wake.Sub(sleep)
	if d <= 0 {
		d += 24 * time.Hour
	}
	return d, nil
}

type SleepLogCreate struct {
	SleepTime string `json:"sleep_time"`
	WakeTime  string `json:"wake_time"`
	Quality   int    `json:"quality,omitempty"`
	Notes     string `json:"notes,omitempty"`
	DreamID   int64  `json:"dream_id,omitempty"`
}

// SleepLogUpdate is a partial update: nil fields are left unchanged
// server-side.
type SleepLogUpdate struct {
	SleepTime *string `json:"sleep_time,omitempty"`
	WakeTime  *string `json:"wake_time,omitempty"`
	Quality   *int    `json:"quality,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	DreamID   *int64  `json:"dream_id,omitempty"`
}
