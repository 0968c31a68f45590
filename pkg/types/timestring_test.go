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
		wantErr bool
	}{
		{name: "valid morning time", input: "08:00"},
		{name: "valid evening time", input: "23:00"},
		{name: "midnight", input: "00:00"},
		{name: "missing minutes", input: "08", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("21:00").IsAfter("13:00"))
	assert.False(t, TimeString("13:00").IsAfter("13:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
	}{
		{name: "add one hour", start: "10:00", minutes: 60, want: "11:00"},
		{name: "cross hour boundary", start: "10:45", minutes: 30, want: "11:15"},
		{name: "wrap past midnight", start: "23:30", minutes: 60, want: "00:30"},
		{name: "negative shift", start: "01:00", minutes: -120, want: "23:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AtDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, loc)

	got, err := TimeString("14:00").AtDate(date, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 14, 0, 0, 0, loc), got)

	_, err = TimeString("bad").AtDate(date, loc)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
