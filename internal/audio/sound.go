package audio

import (
	"fmt"
	"strings"

	appErrors "github.com/svj-dojo/bellwall-api/pkg/errors"
)

// Sound identifies one of the fixed bell tones the display can synthesise.
// The set is closed on purpose: an unsupported id is rejected when a
// schedule is edited, never discovered at ring time.
type Sound string

const (
	SoundClassic Sound = "classic"
	SoundGong    Sound = "gong"
	SoundChime   Sound = "chime"
	SoundSoft    Sound = "soft"
)

// ToneSpec carries the synthesis parameters for a sound: the partial
// frequencies in Hz, their peak gain, and the envelope decay. Cue events
// embed the spec so display clients need no tone catalogue of their own.
type ToneSpec struct {
	Partials     []float64 `json:"partials"`
	PeakGain     float64   `json:"peak_gain"`
	DecaySeconds float64   `json:"decay_seconds"`
}

var toneTable = map[Sound]ToneSpec{
	// C5/E5/G5/C6 major chord with a long ring, the default school bell.
	SoundClassic: {Partials: []float64{523.25, 659.25, 783.99, 1046.5}, PeakGain: 0.3, DecaySeconds: 2},
	// Low inharmonic stack for tournament mats.
	SoundGong: {Partials: []float64{196.0, 261.63, 392.0}, PeakGain: 0.35, DecaySeconds: 3},
	// Three ascending tones, used for the two-minute warning.
	SoundChime: {Partials: []float64{392.0, 493.88, 587.33}, PeakGain: 0.2, DecaySeconds: 0.4},
	SoundSoft:  {Partials: []float64{440.0, 880.0}, PeakGain: 0.15, DecaySeconds: 1},
}

// ParseSound validates a sound id coming from the editing API. Matching is
// case insensitive and ignores surrounding whitespace.
func ParseSound(id string) (Sound, error) {
	s := Sound(strings.ToLower(strings.TrimSpace(id)))
	if _, ok := toneTable[s]; !ok {
		return "", appErrors.Clone(appErrors.ErrUnknownSound, fmt.Sprintf("unknown bell sound %q", id))
	}
	return s, nil
}

// Tone returns the synthesis parameters for the sound. Unknown sounds fall
// back to the classic bell so a stale row can never silence a cue.
func (s Sound) Tone() ToneSpec {
	if spec, ok := toneTable[s]; ok {
		return spec
	}
	return toneTable[SoundClassic]
}

// Sounds lists every supported sound id in a stable order.
func Sounds() []Sound {
	return []Sound{SoundClassic, SoundGong, SoundChime, SoundSoft}
}
