package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/svj-dojo/bellwall-api/internal/models"
)

// EngineSource bundles the read-only queries the bell engine needs into a
// single collaborator, keeping the engine off the full repositories.
type EngineSource struct {
	groups    *GroupRepository
	schedules *ScheduleRepository
}

// NewEngineSource builds the engine's storage view.
func NewEngineSource(db *sqlx.DB) *EngineSource {
	return &EngineSource{
		groups:    NewGroupRepository(db),
		schedules: NewScheduleRepository(db),
	}
}

// ActiveGroup returns the group the display runs, nil when none is active.
func (s *EngineSource) ActiveGroup(ctx context.Context) (*models.Group, error) {
	return s.groups.FindActive(ctx)
}

// ListSchedules returns the group's schedules with sections loaded.
func (s *EngineSource) ListSchedules(ctx context.Context, groupID string) ([]models.Schedule, error) {
	return s.schedules.ListByGroup(ctx, groupID)
}
