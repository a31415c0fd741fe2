package engine

import (
	"fmt"
	"time"

	"github.com/svj-dojo/bellwall-api/internal/models"
)

const daysPerWeek = 7

// Occurrence describes when the selected schedule runs relative to now.
// DaysAway is 0 for today, 1 for tomorrow, up to 7 for "same weekday next
// week" after today's span has elapsed.
type Occurrence struct {
	DaysAway   int    `json:"days_away"`
	InProgress bool   `json:"in_progress"`
	Label      string `json:"label"`
}

// SelectCurrent picks which schedule the engine should resolve against for
// a given instant. An in-progress class always wins; otherwise the soonest
// upcoming occurrence does, ordered by (days away, start time of day).
// "Any day" schedules compete as if scheduled for today. When no schedule
// carries a usable day tag the first schedule is returned so callers never
// see a nil selection from a non-empty collection.
func SelectCurrent(schedules []models.Schedule, now time.Time) (*models.Schedule, Occurrence) {
	if len(schedules) == 0 {
		return nil, Occurrence{}
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	today := now.Weekday()

	var best *models.Schedule
	var bestOcc Occurrence
	bestKey := [2]int{daysPerWeek + 1, 0}

	for i := range schedules {
		schedule := &schedules[i]
		day, anyDay, err := models.ParseDayOfWeek(schedule.DayOfWeek)
		if err != nil {
			// No usable day tag: valid, but excluded from day matching.
			continue
		}

		start, end, ok := schedule.Span()
		if !ok {
			start, err = models.TimeToMinutes(schedule.ClassStart)
			if err != nil {
				continue
			}
			end = start
		}

		daysUntil := 0
		if !anyDay {
			daysUntil = (int(day) - int(today) + daysPerWeek) % daysPerWeek
		}

		if daysUntil == 0 {
			if nowMinutes >= start && nowMinutes < end {
				// An in-progress class outranks every future candidate.
				return schedule, Occurrence{
					DaysAway:   0,
					InProgress: true,
					Label:      occurrenceLabel(0, schedule.ClassStart, day, anyDay),
				}
			}
			if nowMinutes >= end {
				// Already over today; next occurrence is a week out, or
				// tomorrow for an any-day schedule.
				if anyDay {
					daysUntil = 1
				} else {
					daysUntil = daysPerWeek
				}
			}
		}

		key := [2]int{daysUntil, start}
		if best == nil || key[0] < bestKey[0] || (key[0] == bestKey[0] && key[1] < bestKey[1]) {
			best = schedule
			bestKey = key
			bestOcc = Occurrence{
				DaysAway: daysUntil,
				Label:    occurrenceLabel(daysUntil, schedule.ClassStart, day, anyDay),
			}
		}
	}

	if best == nil {
		// Deterministic fallback: nothing matched by day, show the first.
		first := &schedules[0]
		return first, Occurrence{Label: occurrenceLabel(0, first.ClassStart, 0, true)}
	}
	return best, bestOcc
}

func occurrenceLabel(daysAway int, classStart string, day time.Weekday, anyDay bool) string {
	at := models.FormatTime12Hour(classStart)
	switch {
	case daysAway == 0:
		return fmt.Sprintf("Today at %s", at)
	case daysAway == 1:
		return fmt.Sprintf("Tomorrow at %s", at)
	case anyDay:
		return fmt.Sprintf("Next at %s", at)
	default:
		return fmt.Sprintf("%s at %s", day.String(), at)
	}
}
