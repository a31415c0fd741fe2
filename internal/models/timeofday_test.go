package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "midnight", value: "00:00", want: 0},
		{name: "morning", value: "09:05", want: 545},
		{name: "evening", value: "18:30", want: 1110},
		{name: "last minute", value: "23:59", want: 1439},
		{name: "missing colon", value: "1830", wantErr: true},
		{name: "hour out of range", value: "24:00", wantErr: true},
		{name: "minute out of range", value: "12:60", wantErr: true},
		{name: "not a number", value: "ab:cd", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeToMinutes(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "18:30", MinutesToTime(1110))
	assert.Equal(t, "00:30", MinutesToTime(1470))
	assert.Equal(t, "23:00", MinutesToTime(-60))
}

func TestFormatTime12Hour(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatTime12Hour("00:00"))
	assert.Equal(t, "9:00 AM", FormatTime12Hour("09:00"))
	assert.Equal(t, "12:15 PM", FormatTime12Hour("12:15"))
	assert.Equal(t, "6:30 PM", FormatTime12Hour("18:30"))
	// Unparseable input is passed through, not masked.
	assert.Equal(t, "oops", FormatTime12Hour("oops"))
}

func TestParseDayOfWeek(t *testing.T) {
	day, anyDay, err := ParseDayOfWeek("Tuesday")
	require.NoError(t, err)
	assert.Equal(t, time.Tuesday, day)
	assert.False(t, anyDay)

	_, anyDay, err = ParseDayOfWeek(" ANY ")
	require.NoError(t, err)
	assert.True(t, anyDay)

	_, _, err = ParseDayOfWeek("someday")
	assert.Error(t, err)
}

func TestIsValidDayTag(t *testing.T) {
	assert.True(t, IsValidDayTag("saturday"))
	assert.True(t, IsValidDayTag("any"))
	assert.False(t, IsValidDayTag(""))
	assert.False(t, IsValidDayTag("weekend"))
}

func TestRecalculateSectionTimes(t *testing.T) {
	sections := []Section{
		{Name: "Warmup", DurationMinutes: 15},
		{Name: "Technique", DurationMinutes: 30},
		{Name: "Randori", DurationMinutes: 45},
	}

	out, err := RecalculateSectionTimes("18:00", sections)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "18:00", out[0].StartTime)
	assert.Equal(t, "18:15", out[0].EndTime)
	assert.Equal(t, "18:15", out[1].StartTime)
	assert.Equal(t, "18:45", out[1].EndTime)
	assert.Equal(t, "18:45", out[2].StartTime)
	assert.Equal(t, "19:30", out[2].EndTime)
	for i, section := range out {
		assert.Equal(t, i, section.Position)
	}
}

func TestRecalculateSectionTimesRejectsBadDurations(t *testing.T) {
	_, err := RecalculateSectionTimes("18:00", []Section{{Name: "Warmup", DurationMinutes: 0}})
	assert.Error(t, err)

	// A section that would cross midnight is rejected rather than wrapped.
	_, err = RecalculateSectionTimes("23:00", []Section{{Name: "Late", DurationMinutes: 90}})
	assert.Error(t, err)

	_, err = RecalculateSectionTimes("bad", []Section{{Name: "Warmup", DurationMinutes: 10}})
	assert.Error(t, err)
}

func TestSectionProgress(t *testing.T) {
	section := Section{StartTime: "18:00", EndTime: "19:00"}

	assert.Equal(t, 0.0, SectionProgress(section, 17*3600))
	assert.Equal(t, 50.0, SectionProgress(section, 18*3600+30*60))
	assert.Equal(t, 100.0, SectionProgress(section, 20*3600))

	zero := Section{StartTime: "18:00", EndTime: "18:00"}
	assert.Equal(t, 0.0, SectionProgress(zero, 18*3600))
}
