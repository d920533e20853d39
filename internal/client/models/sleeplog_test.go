package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"rfc3339", "2026-08-30T23:00:00Z"},
		{"no timezone", "2026-08-30T23:00:00"},
		{"fractional seconds", "2026-08-30T23:00:00.123456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			require.Equal(t, 23, parsed.Hour())
		})
	}

	_, err := ParseTimestamp("30/08/2026 23:00")
	require.Error(t, err)
}

func TestSleepDurationOvernight(t *testing.T) {
	// Same calendar date, wake before sleep: crossed midnight.
	log := &SleepLog{SleepTime: "2026-08-30T23:00:00", WakeTime: "2026-08-30T07:00:00"}
	d, err := log.Duration()
	require.NoError(t, err)
	require.Equal(t, 8*time.Hour, d)
}

func TestSleepDurationExplicitNextDay(t *testing.T) {
	log := &SleepLog{SleepTime: "2026-08-30T23:30:00", WakeTime: "2026-08-31T06:30:00"}
	d, err := log.Duration()
	require.NoError(t, err)
	require.Equal(t, 7*time.Hour, d)
}

func TestSleepDurationEqualTimesMeansFullDay(t *testing.T) {
	log := &SleepLog{SleepTime: "2026-08-30T22:00:00", WakeTime: "2026-08-30T22:00:00"}
	d, err := log.Duration()
	require.NoError(t, err)
	require.Equal(t, 24*time.Hour, d)
}

func TestSleepDurationParseFailure(t *testing.T) {
	log := &SleepLog{SleepTime: "bogus", WakeTime: "2026-08-30T07:00:00"}
	_, err := log.Duration()
	require.ErrorContains(t, err, "sleep_time")

	log = &SleepLog{SleepTime: "2026-08-30T23:00:00", WakeTime: "bogus"}
	_, err = log.Duration()
	require.ErrorContains(t, err, "wake_time")
}

func TestIdeaPriorityLabel(t *testing.T) {
	require.Equal(t, "Lowest", IdeaPriorityLabel(1))
	require.Equal(t, "Medium", IdeaPriorityLabel(3))
	require.Equal(t, "Urgent", IdeaPriorityLabel(5))
	require.Equal(t, "Unknown", IdeaPriorityLabel(0))
	require.Equal(t, "Unknown", IdeaPriorityLabel(6))
}
