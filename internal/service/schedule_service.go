package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/svj-dojo/bellwall-api/internal/audio"
	"github.com/svj-dojo/bellwall-api/internal/models"
	appErrors "github.com/svj-dojo/bellwall-api/pkg/errors"
)

type scheduleRepository interface {
	ListByGroup(ctx context.Context, groupID string) ([]models.Schedule, error)
	FindByID(ctx context.Context, id string) (*models.Schedule, error)
	Create(ctx context.Context, schedule *models.Schedule) error
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, id string) error
}

// displayReloader lets edit operations poke the running engine so the
// display reflects changes without waiting for the periodic re-check.
type displayReloader interface {
	Reload(ctx context.Context)
}

// SectionRequest describes one section in a create/update payload. Start
// and end times are never accepted from the client; they are derived from
// the class start time and the durations.
type SectionRequest struct {
	Name                 string `json:"name" validate:"required"`
	DurationMinutes      int    `json:"duration_minutes" validate:"required,min=1,max=720"`
	Color                string `json:"color"`
	PlayEndBell          bool   `json:"play_end_bell"`
	PlayTwoMinuteWarning bool   `json:"play_two_minute_warning"`
	BellSound            string `json:"bell_sound" validate:"required"`
}

// CreateScheduleRequest describes payload for creating a schedule.
type CreateScheduleRequest struct {
	GroupID      string           `json:"group_id" validate:"required"`
	Name         string           `json:"name" validate:"required"`
	DayOfWeek    string           `json:"day_of_week"`
	ClassStart   string           `json:"class_start" validate:"required"`
	WarningSound string           `json:"warning_sound" validate:"required"`
	EndBellSound string           `json:"end_bell_sound" validate:"required"`
	Sections     []SectionRequest `json:"sections" validate:"dive"`
}

// UpdateScheduleRequest updates an existing schedule.
type UpdateScheduleRequest struct {
	Name         string           `json:"name" validate:"required"`
	DayOfWeek    string           `json:"day_of_week"`
	ClassStart   string           `json:"class_start" validate:"required"`
	WarningSound string           `json:"warning_sound" validate:"required"`
	EndBellSound string           `json:"end_bell_sound" validate:"required"`
	Sections     []SectionRequest `json:"sections" validate:"dive"`
}

// ScheduleService coordinates schedule editing. Every write re-derives the
// section boundaries so stored schedules are always contiguous.
type ScheduleService struct {
	repo      scheduleRepository
	reloader  displayReloader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService instantiates ScheduleService.
func NewScheduleService(repo scheduleRepository, reloader displayReloader, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{repo: repo, reloader: reloader, validator: validate, logger: logger}
}

// ListByGroup returns a group's schedules with sections.
func (s *ScheduleService) ListByGroup(ctx context.Context, groupID string) ([]models.Schedule, error) {
	schedules, err := s.repo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedules")
	}
	return schedules, nil
}

// Get loads one schedule.
func (s *ScheduleService) Get(ctx context.Context, id string) (*models.Schedule, error) {
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule")
	}
	return schedule, nil
}

// Create validates and inserts a new schedule.
func (s *ScheduleService) Create(ctx context.Context, req CreateScheduleRequest) (*models.Schedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}

	schedule, err := s.buildSchedule(req.Name, req.DayOfWeek, req.ClassStart, req.WarningSound, req.EndBellSound, req.Sections)
	if err != nil {
		return nil, err
	}
	schedule.GroupID = req.GroupID

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create schedule")
	}

	s.notifyDisplay(ctx)
	return schedule, nil
}

// Update validates and rewrites an existing schedule.
func (s *ScheduleService) Update(ctx context.Context, id string, req UpdateScheduleRequest) (*models.Schedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	schedule, err := s.buildSchedule(req.Name, req.DayOfWeek, req.ClassStart, req.WarningSound, req.EndBellSound, req.Sections)
	if err != nil {
		return nil, err
	}
	schedule.ID = existing.ID
	schedule.GroupID = existing.GroupID
	schedule.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, schedule); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update schedule")
	}

	s.notifyDisplay(ctx)
	return schedule, nil
}

// Duplicate copies a schedule within its group, untagged so the copy does
// not immediately compete with the original on the same day.
func (s *ScheduleService) Duplicate(ctx context.Context, id string) (*models.Schedule, error) {
	source, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	clone := &models.Schedule{
		GroupID:      source.GroupID,
		Name:         fmt.Sprintf("%s (copy)", source.Name),
		DayOfWeek:    "",
		ClassStart:   source.ClassStart,
		WarningSound: source.WarningSound,
		EndBellSound: source.EndBellSound,
	}
	for _, section := range source.Sections {
		section.ID = ""
		section.ScheduleID = ""
		clone.Sections = append(clone.Sections, section)
	}

	if err := s.repo.Create(ctx, clone); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to duplicate schedule")
	}
	return clone, nil
}

// Delete removes a schedule.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "schedule not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete schedule")
	}

	s.notifyDisplay(ctx)
	return nil
}

// buildSchedule turns a request into a model with validated sounds, a
// validated day tag and freshly derived section boundaries.
func (s *ScheduleService) buildSchedule(name, dayOfWeek, classStart, warningSound, endBellSound string, sections []SectionRequest) (*models.Schedule, error) {
	if dayOfWeek != "" && !models.IsValidDayTag(dayOfWeek) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day of week %q", dayOfWeek))
	}
	if _, err := audio.ParseSound(warningSound); err != nil {
		return nil, err
	}
	if _, err := audio.ParseSound(endBellSound); err != nil {
		return nil, err
	}

	built := make([]models.Section, len(sections))
	for i, section := range sections {
		if _, err := audio.ParseSound(section.BellSound); err != nil {
			return nil, err
		}
		built[i] = models.Section{
			Name:                 section.Name,
			DurationMinutes:      section.DurationMinutes,
			Color:                section.Color,
			PlayEndBell:          section.PlayEndBell,
			PlayTwoMinuteWarning: section.PlayTwoMinuteWarning,
			BellSound:            section.BellSound,
		}
	}

	recomputed, err := models.RecalculateSectionTimes(classStart, built)
	if err != nil {
		return nil, err
	}

	return &models.Schedule{
		Name:         name,
		DayOfWeek:    dayOfWeek,
		ClassStart:   classStart,
		WarningSound: warningSound,
		EndBellSound: endBellSound,
		Sections:     recomputed,
	}, nil
}

func (s *ScheduleService) notifyDisplay(ctx context.Context) {
	if s.reloader != nil {
		s.reloader.Reload(ctx)
	}
}
