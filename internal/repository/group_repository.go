package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/svj-dojo/bellwall-api/internal/models"
)

// GroupRepository provides persistence for schedule groups.
type GroupRepository struct {
	db *sqlx.DB
}

// NewGroupRepository creates a new group repository.
func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// List returns all groups ordered by creation time.
func (r *GroupRepository) List(ctx context.Context) ([]models.Group, error) {
	const query = `SELECT id, name, active, created_at, updated_at FROM groups ORDER BY created_at ASC`
	var groups []models.Group
	if err := r.db.SelectContext(ctx, &groups, query); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// FindByID loads a group by id.
func (r *GroupRepository) FindByID(ctx context.Context, id string) (*models.Group, error) {
	const query = `SELECT id, name, active, created_at, updated_at FROM groups WHERE id = $1`
	var group models.Group
	if err := r.db.GetContext(ctx, &group, query, id); err != nil {
		return nil, err
	}
	return &group, nil
}

// FindActive returns the group flagged active, degrading to the first
// group by creation time when none is flagged. Returns nil without error
// when no groups exist at all.
func (r *GroupRepository) FindActive(ctx context.Context) (*models.Group, error) {
	const query = `SELECT id, name, active, created_at, updated_at FROM groups ORDER BY active DESC, created_at ASC LIMIT 1`
	var group models.Group
	if err := r.db.GetContext(ctx, &group, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find active group: %w", err)
	}
	return &group, nil
}

// Create inserts a new group.
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	group.CreatedAt = now
	group.UpdatedAt = now

	const query = `INSERT INTO groups (id, name, active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, group.ID, group.Name, group.Active, group.CreatedAt, group.UpdatedAt); err != nil {
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

// Activate flags one group as active and every other group as inactive,
// in a single transaction so the exactly-one-active invariant holds.
func (r *GroupRepository) Activate(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin activate group: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, `UPDATE groups SET active = FALSE, updated_at = $1 WHERE active = TRUE`, now); err != nil {
		return fmt.Errorf("deactivate groups: %w", err)
	}
	res, err := tx.ExecContext(ctx, `UPDATE groups SET active = TRUE, updated_at = $1 WHERE id = $2`, now, id)
	if err != nil {
		return fmt.Errorf("activate group: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("activate group rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit activate group: %w", err)
	}
	return nil
}

// Delete removes a group; schedules and sections cascade in the schema.
func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete group rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
