package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "Should count whole days",
			a:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want: 14,
		},
		{
			name: "Should ignore time of day",
			a:    time.Date(2024, 3, 2, 0, 5, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 1, 23, 55, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "Should be absolute for dates in the future",
			a:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
			want: 7,
		},
		{
			name: "Should handle leap day",
			a:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b))
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2021-08-31")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2021, 8, 31, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2021-08-31", FormatDate(got))

	_, err = ParseDate("31/08/2021")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		value      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{value: "09:00", wantHour: 9},
		{value: "23:59", wantHour: 23, wantMinute: 59},
		{value: "9:30", wantHour: 9, wantMinute: 30},
		{value: "24:00", wantErr: true},
		{value: "noon", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			hour, minute, err := ParseClock(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
		})
	}
}
