package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svj-dojo/bellwall-api/internal/models"
)

// at builds an instant on an arbitrary fixed date; only the clock time
// matters to the resolver.
func at(hour, minute, second int) time.Time {
	return time.Date(2026, time.March, 3, hour, minute, second, 0, time.UTC)
}

func testSchedule() *models.Schedule {
	return &models.Schedule{
		ID:           "sched-1",
		Name:         "Tuesday Class",
		DayOfWeek:    "tuesday",
		ClassStart:   "18:00",
		WarningSound: "chime",
		EndBellSound: "classic",
		Sections: []models.Section{
			{ID: "sec-1", Name: "Warmup", StartTime: "18:00", EndTime: "18:10", DurationMinutes: 10, PlayEndBell: true, PlayTwoMinuteWarning: true},
			{ID: "sec-2", Name: "Technique", StartTime: "18:10", EndTime: "18:40", DurationMinutes: 30, PlayEndBell: true, PlayTwoMinuteWarning: true},
			{ID: "sec-3", Name: "Randori", StartTime: "18:40", EndTime: "19:00", DurationMinutes: 20, PlayEndBell: true},
		},
	}
}

func TestResolveBeforeClass(t *testing.T) {
	state := Resolve(testSchedule(), at(17, 30, 0))

	assert.Nil(t, state.CurrentSection)
	require.NotNil(t, state.NextSection)
	assert.Equal(t, "sec-1", state.NextSection.ID)
	assert.False(t, state.IsClassActive)
	assert.Equal(t, 0.0, state.ClassProgress)
}

func TestResolveInsideSection(t *testing.T) {
	state := Resolve(testSchedule(), at(18, 15, 30))

	require.NotNil(t, state.CurrentSection)
	assert.Equal(t, "sec-2", state.CurrentSection.ID)
	require.NotNil(t, state.NextSection)
	assert.Equal(t, "sec-3", state.NextSection.ID)
	// 18:40 end, 24m30s left.
	assert.Equal(t, 24*60+30, state.SecondsRemaining)
	assert.False(t, state.IsWarningPhase)
	assert.False(t, state.IsTwoMinuteWarning)
	assert.True(t, state.IsClassActive)
}

func TestResolveWarningFlags(t *testing.T) {
	// 4 minutes left in Technique: warning phase but not two-minute yet.
	state := Resolve(testSchedule(), at(18, 36, 0))
	require.NotNil(t, state.CurrentSection)
	assert.True(t, state.IsWarningPhase)
	assert.False(t, state.IsTwoMinuteWarning)

	// 90 seconds left: both.
	state = Resolve(testSchedule(), at(18, 38, 30))
	assert.True(t, state.IsWarningPhase)
	assert.True(t, state.IsTwoMinuteWarning)
}

func TestResolveEndMinuteGrace(t *testing.T) {
	// Seconds 0..4 of the end minute still resolve to the ending section
	// so a boundary tick cannot land in a gap.
	state := Resolve(testSchedule(), at(19, 0, 2))
	require.NotNil(t, state.CurrentSection)
	assert.Equal(t, "sec-3", state.CurrentSection.ID)
	assert.Equal(t, 0, state.SecondsRemaining)

	// Past the grace window the class is over.
	state = Resolve(testSchedule(), at(19, 0, 6))
	assert.Nil(t, state.CurrentSection)
	assert.Nil(t, state.NextSection)
}

func TestResolveSectionBoundary(t *testing.T) {
	// Seconds 0..4 of a boundary minute still belong to the ending section;
	// sections are scanned in order and Warmup's grace claims 18:10:00.
	state := Resolve(testSchedule(), at(18, 10, 0))
	require.NotNil(t, state.CurrentSection)
	assert.Equal(t, "sec-1", state.CurrentSection.ID)

	// Once the grace lapses the next section owns the minute.
	state = Resolve(testSchedule(), at(18, 10, 5))
	require.NotNil(t, state.CurrentSection)
	assert.Equal(t, "sec-2", state.CurrentSection.ID)
}

func TestResolveProgressMonotonic(t *testing.T) {
	schedule := testSchedule()
	last := -1.0
	for minute := 0; minute <= 60; minute += 5 {
		state := Resolve(schedule, at(18, 0, 0).Add(time.Duration(minute)*time.Minute))
		assert.GreaterOrEqual(t, state.ClassProgress, last)
		assert.LessOrEqual(t, state.ClassProgress, 100.0)
		last = state.ClassProgress
	}
	assert.Equal(t, 100.0, last)
}

func TestResolveEmptySchedule(t *testing.T) {
	state := Resolve(nil, at(18, 0, 0))
	assert.Nil(t, state.CurrentSection)

	state = Resolve(&models.Schedule{ID: "empty"}, at(18, 0, 0))
	assert.Nil(t, state.CurrentSection)
	assert.False(t, state.IsClassActive)
}
