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
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "missing minutes", input: "09", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
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

func TestNewTimeStringFromHour(t *testing.T) {
	tests := []struct {
		hour    int
		want    TimeString
		wantErr bool
	}{
		{hour: 0, want: "00:00"},
		{hour: 9, want: "09:00"},
		{hour: 23, want: "23:00"},
		{hour: 24, want: "24:00"},
		{hour: -1, wantErr: true},
		{hour: 25, wantErr: true},
	}

	for _, tt := range tests {
		got, err := NewTimeStringFromHour(tt.hour)
		if tt.wantErr {
			assert.Error(t, err, "hour %d", tt.hour)
			continue
		}
		require.NoError(t, err, "hour %d", tt.hour)
		assert.Equal(t, tt.want, got)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "09:30", want: 570},
		{input: "23:59", want: 1439},
		{input: "24:00", want: 1440},
	}

	for _, tt := range tests {
		got, err := tt.input.Minutes()
		require.NoError(t, err, "input %s", tt.input)
		assert.Equal(t, tt.want, got, "input %s", tt.input)
	}

	_, err := TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		add     int
		want    TimeString
		wantErr bool
	}{
		{name: "plus hour", input: "09:00", add: 60, want: "10:00"},
		{name: "cross hour", input: "09:45", add: 30, want: "10:15"},
		{name: "to end of day", input: "23:00", add: 60, want: "24:00"},
		{name: "negative shift", input: "10:00", add: -30, want: "09:30"},
		{name: "past end of day", input: "23:30", add: 60, wantErr: true},
		{name: "before start of day", input: "00:10", add: -20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.AddMinutes(tt.add)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("09:00"))
	assert.True(t, TimeString("17:00").IsAfter("12:00"))
	assert.True(t, TimeString("10:00").Equal("10:00"))
	assert.False(t, TimeString("10:00").Equal("10:01"))
	assert.True(t, TimeString("23:00").IsBefore("24:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("17:30:00")))
	assert.Equal(t, TimeString("17:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 8, 28, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
