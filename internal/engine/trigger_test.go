package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svj-dojo/bellwall-api/internal/audio"
)

func decideAt(t *testing.T, triggers *Triggers, hour, minute, second int) []Cue {
	t.Helper()
	schedule := testSchedule()
	now := at(hour, minute, second)
	return triggers.Decide(schedule, Resolve(schedule, now), now)
}

func TestTwoMinuteWarningFiresOnce(t *testing.T) {
	triggers := NewTriggers(0)

	// 119 seconds left in Technique (ends 18:40): inside the band.
	cues := decideAt(t, triggers, 18, 38, 1)
	require.Len(t, cues, 1)
	assert.Equal(t, CueTwoMinuteWarning, cues[0].Kind)
	assert.Equal(t, audio.Sound("chime"), cues[0].Sound)
	assert.Equal(t, "sec-2", cues[0].SectionID)

	// Still in the band a second later; the marker suppresses a repeat.
	cues = decideAt(t, triggers, 18, 38, 2)
	assert.Empty(t, cues)
}

func TestTwoMinuteWarningSkippedWhenDisabled(t *testing.T) {
	schedule := testSchedule()
	schedule.Sections[2].PlayTwoMinuteWarning = false
	triggers := NewTriggers(0)

	// 119 seconds left in Randori (ends 19:00), warning disabled.
	now := at(18, 58, 1)
	cues := triggers.Decide(schedule, Resolve(schedule, now), now)
	assert.Empty(t, cues)
}

func TestEndBellFiresOnceInFinalSeconds(t *testing.T) {
	triggers := NewTriggers(0)

	cues := decideAt(t, triggers, 18, 9, 58)
	require.Len(t, cues, 1)
	assert.Equal(t, CueEndBell, cues[0].Kind)
	assert.Equal(t, audio.Sound("classic"), cues[0].Sound)
	assert.Equal(t, "sec-1", cues[0].SectionID)

	cues = decideAt(t, triggers, 18, 9, 59)
	assert.Empty(t, cues)
}

func TestEndBellSkippedTickFallback(t *testing.T) {
	triggers := NewTriggers(0)

	// Last sample before the boundary is outside the end window.
	cues := decideAt(t, triggers, 18, 9, 56)
	assert.Empty(t, cues)

	// The next sample lands past the boundary and past the end-minute grace,
	// so it resolves to the following section. The section change between
	// consecutive samples still rings the bell for the section that ended.
	cues = decideAt(t, triggers, 18, 10, 6)
	require.Len(t, cues, 1)
	assert.Equal(t, CueEndBell, cues[0].Kind)
	assert.Equal(t, "sec-1", cues[0].SectionID)
}

func TestEndBellNotRepeatedAcrossTransition(t *testing.T) {
	triggers := NewTriggers(0)

	// Rings in the final seconds.
	cues := decideAt(t, triggers, 18, 9, 59)
	require.Len(t, cues, 1)

	// The transition tick must not ring it again.
	cues = decideAt(t, triggers, 18, 10, 6)
	assert.Empty(t, cues)
}

func TestEndBellCooldownSuppressesBackToBack(t *testing.T) {
	schedule := testSchedule()
	// Squeeze two sections so their end bells land 60 seconds apart, then
	// use a cooldown wider than that gap.
	schedule.Sections[0].EndTime = "18:01"
	schedule.Sections[1].StartTime = "18:01"
	schedule.Sections[1].EndTime = "18:02"
	triggers := NewTriggers(90 * time.Second)

	now := at(18, 0, 59)
	cues := triggers.Decide(schedule, Resolve(schedule, now), now)
	require.Len(t, cues, 1)

	now = at(18, 1, 59)
	cues = triggers.Decide(schedule, Resolve(schedule, now), now)
	assert.Empty(t, cues)
}

func TestTriggersReset(t *testing.T) {
	triggers := NewTriggers(0)

	cues := decideAt(t, triggers, 18, 9, 59)
	require.Len(t, cues, 1)

	// After a reset the same section occurrence may ring again, e.g. when
	// the engine switches to a different schedule and back.
	triggers.Reset()
	cues = decideAt(t, triggers, 18, 9, 59)
	require.Len(t, cues, 1)
}

func TestDecideWithNoCurrentSection(t *testing.T) {
	triggers := NewTriggers(0)
	schedule := testSchedule()
	now := at(17, 0, 0)

	cues := triggers.Decide(schedule, Resolve(schedule, now), now)
	assert.Empty(t, cues)
}
