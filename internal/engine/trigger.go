package engine

import (
	"time"

	"github.com/svj-dojo/bellwall-api/internal/audio"
	"github.com/svj-dojo/bellwall-api/internal/models"
)

// Trigger windows. The two-minute warning fires only in a narrow band just
// under the threshold so the marker is armed once instead of on every tick
// of the whole two-minute span; the end bell fires in the final seconds of
// the section. Both bands must be wider than the tick interval or a slow
// tick can step across them, which is what the transition fallback in
// Decide covers.
const (
	twoMinuteWindowSeconds = 3
	endBellWindowSeconds   = 2

	defaultBellCooldown = 5 * time.Second
)

// CueKind discriminates the two audio cue kinds.
type CueKind string

const (
	CueEndBell          CueKind = "end_bell"
	CueTwoMinuteWarning CueKind = "two_minute_warning"
)

// Cue is one decided audio effect, to be applied by an executor outside
// the decision logic.
type Cue struct {
	Kind        CueKind
	Sound       audio.Sound
	SectionID   string
	SectionName string
}

// Triggers holds the one-slot dedup markers that make cue emission
// exactly-once per section occurrence under a noisy sampling clock. It is
// the only sequential-tick memory in the engine: everything else is a pure
// recomputation from the current instant. A Triggers value is explicitly
// owned by its engine and reset on schedule switch or teardown, never
// shared package state.
type Triggers struct {
	twoMinuteFor string
	endBellFor   string
	lastBellAt   time.Time
	cooldown     time.Duration

	prev *models.Section
}

// NewTriggers builds an empty marker set. A non-positive cooldown falls
// back to the default.
func NewTriggers(cooldown time.Duration) *Triggers {
	if cooldown <= 0 {
		cooldown = defaultBellCooldown
	}
	return &Triggers{cooldown: cooldown}
}

// Reset clears the markers, e.g. when the resolved schedule changes or the
// engine is torn down. No cue decided before Reset may be replayed after.
func (t *Triggers) Reset() {
	t.twoMinuteFor = ""
	t.endBellFor = ""
	t.lastBellAt = time.Time{}
	t.prev = nil
}

// Decide compares the freshly resolved state against the markers and
// returns the cues that must fire on this tick, updating the markers as it
// goes. Calling it twice with the same state never returns the same cue
// twice; that is the at-most-once contract the audio side relies on.
func (t *Triggers) Decide(schedule *models.Schedule, state models.TimerState, now time.Time) []Cue {
	var cues []Cue
	current := state.CurrentSection

	if current != nil && schedule != nil {
		remaining := state.SecondsRemaining

		if current.PlayTwoMinuteWarning &&
			remaining <= twoMinuteSeconds && remaining > twoMinuteSeconds-twoMinuteWindowSeconds &&
			t.twoMinuteFor != current.ID {
			t.twoMinuteFor = current.ID
			cues = append(cues, Cue{
				Kind:        CueTwoMinuteWarning,
				Sound:       audio.Sound(schedule.WarningSound),
				SectionID:   current.ID,
				SectionName: current.Name,
			})
		}

		if current.PlayEndBell &&
			remaining >= 0 && remaining <= endBellWindowSeconds &&
			t.endBellFor != current.ID &&
			t.bellAllowed(now) {
			t.endBellFor = current.ID
			t.lastBellAt = now
			cues = append(cues, Cue{
				Kind:        CueEndBell,
				Sound:       audio.Sound(schedule.EndBellSound),
				SectionID:   current.ID,
				SectionName: current.Name,
			})
		}
	}

	// Transition fallback: if a tick was skipped across the end boundary,
	// the section change between consecutive samples is the signal that
	// still fires the bell exactly once.
	if prev := t.prev; prev != nil && (current == nil || current.ID != prev.ID) {
		if prev.PlayEndBell && t.endBellFor != prev.ID && schedule != nil && t.bellAllowed(now) {
			t.endBellFor = prev.ID
			t.lastBellAt = now
			cues = append(cues, Cue{
				Kind:        CueEndBell,
				Sound:       audio.Sound(schedule.EndBellSound),
				SectionID:   prev.ID,
				SectionName: prev.Name,
			})
		}
	}

	if current != nil {
		copied := *current
		t.prev = &copied
	} else {
		t.prev = nil
	}

	return cues
}

func (t *Triggers) bellAllowed(now time.Time) bool {
	return t.lastBellAt.IsZero() || now.Sub(t.lastBellAt) >= t.cooldown
}
