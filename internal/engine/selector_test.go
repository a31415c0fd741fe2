package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svj-dojo/bellwall-api/internal/models"
)

func daySchedule(id, day, start, end string) models.Schedule {
	return models.Schedule{
		ID:         id,
		Name:       id,
		DayOfWeek:  day,
		ClassStart: start,
		Sections: []models.Section{
			{ID: id + "-sec", Name: "Class", StartTime: start, EndTime: end},
		},
	}
}

// The fixed test date 2026-03-03 is a Tuesday.

func TestSelectCurrentInProgressWins(t *testing.T) {
	schedules := []models.Schedule{
		daySchedule("wed", "wednesday", "09:00", "10:00"),
		daySchedule("tue", "tuesday", "18:00", "19:00"),
	}

	selected, occ := SelectCurrent(schedules, at(18, 30, 0))
	require.NotNil(t, selected)
	assert.Equal(t, "tue", selected.ID)
	assert.True(t, occ.InProgress)
	assert.Equal(t, 0, occ.DaysAway)
	assert.Equal(t, "Today at 6:00 PM", occ.Label)
}

func TestSelectCurrentSoonestDayWins(t *testing.T) {
	schedules := []models.Schedule{
		daySchedule("sat", "saturday", "10:00", "11:00"),
		daySchedule("thu", "thursday", "18:00", "19:00"),
	}

	selected, occ := SelectCurrent(schedules, at(12, 0, 0))
	require.NotNil(t, selected)
	assert.Equal(t, "thu", selected.ID)
	assert.Equal(t, 2, occ.DaysAway)
	assert.Equal(t, "Thursday at 6:00 PM", occ.Label)
}

func TestSelectCurrentSameDayOrdersByStart(t *testing.T) {
	schedules := []models.Schedule{
		daySchedule("late", "tuesday", "19:30", "20:30"),
		daySchedule("early", "tuesday", "17:00", "18:00"),
	}

	selected, occ := SelectCurrent(schedules, at(9, 0, 0))
	require.NotNil(t, selected)
	assert.Equal(t, "early", selected.ID)
	assert.Equal(t, "Today at 5:00 PM", occ.Label)
}

func TestSelectCurrentElapsedTodayRollsAWeek(t *testing.T) {
	schedules := []models.Schedule{
		daySchedule("tue", "tuesday", "09:00", "10:00"),
	}

	selected, occ := SelectCurrent(schedules, at(12, 0, 0))
	require.NotNil(t, selected)
	assert.Equal(t, "tue", selected.ID)
	assert.Equal(t, 7, occ.DaysAway)
	assert.Equal(t, "Tuesday at 9:00 AM", occ.Label)
}

func TestSelectCurrentTomorrowLabel(t *testing.T) {
	schedules := []models.Schedule{
		daySchedule("wed", "wednesday", "18:00", "19:00"),
	}

	_, occ := SelectCurrent(schedules, at(12, 0, 0))
	assert.Equal(t, 1, occ.DaysAway)
	assert.Equal(t, "Tomorrow at 6:00 PM", occ.Label)
}

func TestSelectCurrentAnyDay(t *testing.T) {
	schedules := []models.Schedule{
		daySchedule("tournament", "any", "09:00", "17:00"),
	}

	// Upcoming today.
	selected, occ := SelectCurrent(schedules, at(8, 0, 0))
	require.NotNil(t, selected)
	assert.Equal(t, 0, occ.DaysAway)
	assert.Equal(t, "Today at 9:00 AM", occ.Label)

	// Already over today: next occurrence is tomorrow, not next week.
	_, occ = SelectCurrent(schedules, at(18, 0, 0))
	assert.Equal(t, 1, occ.DaysAway)
	assert.Equal(t, "Tomorrow at 9:00 AM", occ.Label)
}

func TestSelectCurrentAnyDayCompetesAsToday(t *testing.T) {
	schedules := []models.Schedule{
		daySchedule("thu", "thursday", "08:00", "09:00"),
		daySchedule("open-mat", "any", "19:00", "20:00"),
	}

	selected, occ := SelectCurrent(schedules, at(12, 0, 0))
	require.NotNil(t, selected)
	assert.Equal(t, "open-mat", selected.ID)
	assert.Equal(t, 0, occ.DaysAway)
}

func TestSelectCurrentFallsBackToFirst(t *testing.T) {
	schedules := []models.Schedule{
		daySchedule("untagged", "", "18:00", "19:00"),
		daySchedule("also-untagged", "", "09:00", "10:00"),
	}

	selected, occ := SelectCurrent(schedules, at(12, 0, 0))
	require.NotNil(t, selected)
	assert.Equal(t, "untagged", selected.ID)
	assert.False(t, occ.InProgress)
}

func TestSelectCurrentEmpty(t *testing.T) {
	selected, _ := SelectCurrent(nil, at(12, 0, 0))
	assert.Nil(t, selected)
}
