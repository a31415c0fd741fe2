package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/svj-dojo/bellwall-api/internal/models"
)

const scheduleColumns = `id, group_id, name, day_of_week, class_start, warning_sound, end_bell_sound, created_at, updated_at`
const sectionColumns = `id, schedule_id, position, name, start_time, end_time, duration_minutes, color, play_end_bell, play_two_minute_warning, bell_sound, created_at, updated_at`

// ScheduleRepository provides persistence for schedules and their sections.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository creates a new schedule repository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ListByGroup returns a group's schedules with sections attached, ordered
// by class start time.
func (r *ScheduleRepository) ListByGroup(ctx context.Context, groupID string) ([]models.Schedule, error) {
	query := fmt.Sprintf(`SELECT %s FROM schedules WHERE group_id = $1 ORDER BY class_start ASC, created_at ASC`, scheduleColumns)
	var schedules []models.Schedule
	if err := r.db.SelectContext(ctx, &schedules, query, groupID); err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	for i := range schedules {
		sections, err := r.listSections(ctx, schedules[i].ID)
		if err != nil {
			return nil, err
		}
		schedules[i].Sections = sections
	}
	return schedules, nil
}

// FindByID loads a schedule and its sections.
func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*models.Schedule, error) {
	query := fmt.Sprintf(`SELECT %s FROM schedules WHERE id = $1`, scheduleColumns)
	var schedule models.Schedule
	if err := r.db.GetContext(ctx, &schedule, query, id); err != nil {
		return nil, err
	}
	sections, err := r.listSections(ctx, schedule.ID)
	if err != nil {
		return nil, err
	}
	schedule.Sections = sections
	return &schedule, nil
}

// Create inserts a schedule together with its sections.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create schedule: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	const insertSchedule = `INSERT INTO schedules (id, group_id, name, day_of_week, class_start, warning_sound, end_bell_sound, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := tx.ExecContext(ctx, insertSchedule,
		schedule.ID, schedule.GroupID, schedule.Name, schedule.DayOfWeek, schedule.ClassStart,
		schedule.WarningSound, schedule.EndBellSound, schedule.CreatedAt, schedule.UpdatedAt,
	); err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}

	if err := insertSections(ctx, tx, schedule.ID, schedule.Sections, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create schedule: %w", err)
	}
	return nil
}

// Update rewrites a schedule and replaces its section rows. Sections are
// recomputed by the service before they get here, so replacing wholesale
// keeps the contiguity invariant trivially intact.
func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update schedule: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC()
	schedule.UpdatedAt = now

	const updateSchedule = `UPDATE schedules SET name = $1, day_of_week = $2, class_start = $3, warning_sound = $4, end_bell_sound = $5, updated_at = $6 WHERE id = $7`
	res, err := tx.ExecContext(ctx, updateSchedule,
		schedule.Name, schedule.DayOfWeek, schedule.ClassStart,
		schedule.WarningSound, schedule.EndBellSound, schedule.UpdatedAt, schedule.ID,
	)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update schedule rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sections WHERE schedule_id = $1`, schedule.ID); err != nil {
		return fmt.Errorf("clear sections: %w", err)
	}
	if err := insertSections(ctx, tx, schedule.ID, schedule.Sections, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update schedule: %w", err)
	}
	return nil
}

// Delete removes a schedule; its sections cascade in the schema.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete schedule rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ScheduleRepository) listSections(ctx context.Context, scheduleID string) ([]models.Section, error) {
	query := fmt.Sprintf(`SELECT %s FROM sections WHERE schedule_id = $1 ORDER BY position ASC`, sectionColumns)
	var sections []models.Section
	if err := r.db.SelectContext(ctx, &sections, query, scheduleID); err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

func insertSections(ctx context.Context, tx *sqlx.Tx, scheduleID string, sections []models.Section, now time.Time) error {
	const insertSection = `INSERT INTO sections (id, schedule_id, position, name, start_time, end_time, duration_minutes, color, play_end_bell, play_two_minute_warning, bell_sound, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for i := range sections {
		section := &sections[i]
		if section.ID == "" {
			section.ID = uuid.NewString()
		}
		section.ScheduleID = scheduleID
		section.Position = i
		if section.CreatedAt.IsZero() {
			section.CreatedAt = now
		}
		section.UpdatedAt = now
		if _, err := tx.ExecContext(ctx, insertSection,
			section.ID, section.ScheduleID, section.Position, section.Name,
			section.StartTime, section.EndTime, section.DurationMinutes, section.Color,
			section.PlayEndBell, section.PlayTwoMinuteWarning, section.BellSound,
			section.CreatedAt, section.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert section: %w", err)
		}
	}
	return nil
}
