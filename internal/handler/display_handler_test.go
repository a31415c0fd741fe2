package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svj-dojo/bellwall-api/internal/engine"
	"github.com/svj-dojo/bellwall-api/internal/models"
	"github.com/svj-dojo/bellwall-api/internal/service"
)

type fakeDisplayEngine struct {
	snap    engine.Snapshot
	muted   bool
	reloads int
}

func (f *fakeDisplayEngine) Snapshot() engine.Snapshot   { return f.snap }
func (f *fakeDisplayEngine) Reload(context.Context)      { f.reloads++ }
func (f *fakeDisplayEngine) SetMuted(muted bool)         { f.muted = muted }
func (f *fakeDisplayEngine) Muted() bool                 { return f.muted }

func TestDisplayHandlerState(t *testing.T) {
	gin.SetMode(gin.TestMode)
	eng := &fakeDisplayEngine{
		snap: engine.Snapshot{
			Schedule:   &models.Schedule{ID: "sched-1", Name: "Tuesday Class"},
			Occurrence: engine.Occurrence{Label: "Today at 6:00 PM", InProgress: true},
		},
	}
	handler := NewDisplayHandler(service.NewDisplayService(eng, nil))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/display/state", nil)

	handler.State(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data engine.Snapshot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data.Schedule)
	assert.Equal(t, "sched-1", envelope.Data.Schedule.ID)
	assert.True(t, envelope.Data.Occurrence.InProgress)
}

func TestDisplayHandlerMute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	eng := &fakeDisplayEngine{}
	handler := NewDisplayHandler(service.NewDisplayService(eng, nil))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPut, "/display/mute", bytes.NewBufferString(`{"muted":true}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Mute(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, eng.muted)

	var envelope struct {
		Data map[string]bool `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data["muted"])
}

func TestDisplayHandlerSounds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewDisplayHandler(service.NewDisplayService(&fakeDisplayEngine{}, nil))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/sounds", nil)

	handler.Sounds(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data []struct {
			Name string `json:"name"`
			Tone struct {
				Partials []float64 `json:"partials"`
			} `json:"tone"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 4)
	assert.Equal(t, "classic", envelope.Data[0].Name)
	assert.NotEmpty(t, envelope.Data[0].Tone.Partials)
}
