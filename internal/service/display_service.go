package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/svj-dojo/bellwall-api/internal/engine"
	"github.com/svj-dojo/bellwall-api/internal/models"
)

// displayEngine is the part of the bell engine the display API consumes.
type displayEngine interface {
	Snapshot() engine.Snapshot
	Reload(ctx context.Context)
	SetMuted(muted bool)
	Muted() bool
}

// MuteRequest toggles display audio.
type MuteRequest struct {
	Muted bool `json:"muted"`
}

// DisplayService exposes the running engine to the read-only display API.
type DisplayService struct {
	engine displayEngine
	logger *zap.Logger
}

// NewDisplayService instantiates DisplayService.
func NewDisplayService(eng displayEngine, logger *zap.Logger) *DisplayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DisplayService{engine: eng, logger: logger}
}

// State returns the latest engine snapshot.
func (s *DisplayService) State() engine.Snapshot {
	return s.engine.Snapshot()
}

// Next returns the selector's current choice without the tick state.
func (s *DisplayService) Next() (*models.Schedule, engine.Occurrence) {
	snap := s.engine.Snapshot()
	return snap.Schedule, snap.Occurrence
}

// SetMuted forwards the mute toggle to the audio collaborator.
func (s *DisplayService) SetMuted(req MuteRequest) bool {
	s.engine.SetMuted(req.Muted)
	s.logger.Info("display mute toggled", zap.Bool("muted", req.Muted))
	return s.engine.Muted()
}
