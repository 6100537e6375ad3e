package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "morning", input: "9:00 AM", want: "9:00 AM"},
		{name: "afternoon", input: "2:30 PM", want: "2:30 PM"},
		{name: "noon", input: "12:00 PM", want: "12:00 PM"},
		{name: "midnight", input: "12:00 AM", want: "12:00 AM"},
		{name: "24h format rejected", input: "14:30", wantErr: true},
		{name: "garbage rejected", input: "not a time", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
	}{
		{name: "within hour", start: "9:00 AM", minutes: 30, want: "9:30 AM"},
		{name: "across hour", start: "9:45 AM", minutes: 30, want: "10:15 AM"},
		{name: "across noon", start: "11:30 AM", minutes: 45, want: "12:15 PM"},
		{name: "zero", start: "5:00 PM", minutes: 0, want: "5:00 PM"},
		{name: "exactly to closing", start: "5:30 PM", minutes: 30, want: "6:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2025, time.March, 15, 23, 59, 0, 0, time.UTC)

	got, err := TimeString("10:30 AM").On(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC), got)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("9:00 AM").IsBefore("10:00 AM"))
	assert.True(t, TimeString("11:30 AM").IsBefore("12:00 PM"))
	assert.True(t, TimeString("6:00 PM").IsAfter("9:00 AM"))
	assert.False(t, TimeString("9:00 AM").IsBefore("9:00 AM"))
	assert.False(t, TimeString("9:00 AM").IsAfter("9:00 AM"))
}

func TestTimeString_MinutesFromMidnight(t *testing.T) {
	tests := []struct {
		ts   TimeString
		want int
	}{
		{ts: "12:00 AM", want: 0},
		{ts: "9:00 AM", want: 540},
		{ts: "12:00 PM", want: 720},
		{ts: "6:00 PM", want: 1080},
	}

	for _, tt := range tests {
		got, err := tt.ts.MinutesFromMidnight()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "ts=%s", tt.ts)
	}
}
