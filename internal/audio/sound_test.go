package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/svj-dojo/bellwall-api/pkg/errors"
)

func TestParseSound(t *testing.T) {
	sound, err := ParseSound("gong")
	require.NoError(t, err)
	assert.Equal(t, SoundGong, sound)

	sound, err = ParseSound(" Classic ")
	require.NoError(t, err)
	assert.Equal(t, SoundClassic, sound)

	_, err = ParseSound("airhorn")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnknownSound.Code, appErr.Code)
}

func TestSoundsCatalogueIsClosed(t *testing.T) {
	sounds := Sounds()
	require.Len(t, sounds, 4)
	for _, sound := range sounds {
		spec := sound.Tone()
		assert.NotEmpty(t, spec.Partials, "sound %q has no partials", sound)
		assert.Greater(t, spec.DecaySeconds, 0.0)
		assert.Greater(t, spec.PeakGain, 0.0)
	}
}

func TestToneFallsBackToClassic(t *testing.T) {
	spec := Sound("mystery").Tone()
	assert.Equal(t, SoundClassic.Tone(), spec)
}
