package engine

import (
	"time"

	"github.com/svj-dojo/bellwall-api/internal/models"
)

// Tolerances for catching boundary transitions under a once-per-second
// sampling clock. endGraceSeconds keeps the ending section "current" for the
// first few seconds of its end minute so the boundary tick still resolves to
// it instead of falling into a gap; it must stay comfortably above the tick
// interval or a delayed tick can skip the window entirely.
const (
	endGraceSeconds = 5

	warningPhaseSeconds = 300
	twoMinuteSeconds    = 120
)

// Resolve maps a wall-clock instant onto the schedule's sections. It is a
// pure recomputation from the instant and the schedule's read state; nothing
// carries over between ticks.
func Resolve(schedule *models.Schedule, now time.Time) models.TimerState {
	state := models.TimerState{CurrentTime: now}
	if schedule == nil || len(schedule.Sections) == 0 {
		return state
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	nowSeconds := now.Second()
	totalSeconds := nowMinutes*60 + nowSeconds

	for i := range schedule.Sections {
		section := &schedule.Sections[i]
		start, err := models.TimeToMinutes(section.StartTime)
		if err != nil {
			continue
		}
		end, err := models.TimeToMinutes(section.EndTime)
		if err != nil {
			continue
		}

		switch {
		case nowMinutes >= start && nowMinutes < end:
			state.CurrentSection = section
		case nowMinutes == end && nowSeconds < endGraceSeconds:
			// Exact end minute: hold onto the ending section briefly so
			// the boundary tick does not land in a gap.
			state.CurrentSection = section
		case nowMinutes < start:
			state.NextSection = section
		default:
			continue
		}

		if state.CurrentSection != nil && i+1 < len(schedule.Sections) {
			state.NextSection = &schedule.Sections[i+1]
		}
		break
	}

	if current := state.CurrentSection; current != nil {
		end, _ := models.TimeToMinutes(current.EndTime)
		remaining := end*60 - totalSeconds
		state.IsWarningPhase = remaining > 0 && remaining <= warningPhaseSeconds
		state.IsTwoMinuteWarning = remaining > 0 && remaining <= twoMinuteSeconds
		if remaining < 0 {
			remaining = 0
		}
		state.SecondsRemaining = remaining
		state.SectionProgress = models.SectionProgress(*current, totalSeconds)
	}

	if classStart, classEnd, ok := schedule.Span(); ok && classEnd > classStart {
		elapsed := float64(nowMinutes-classStart) / float64(classEnd-classStart) * 100
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed > 100 {
			elapsed = 100
		}
		state.ClassProgress = elapsed
		state.IsClassActive = nowMinutes >= classStart && nowMinutes < classEnd
	}

	return state
}
