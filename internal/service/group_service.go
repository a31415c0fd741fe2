package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/svj-dojo/bellwall-api/internal/models"
	appErrors "github.com/svj-dojo/bellwall-api/pkg/errors"
)

type groupRepository interface {
	List(ctx context.Context) ([]models.Group, error)
	FindByID(ctx context.Context, id string) (*models.Group, error)
	FindActive(ctx context.Context) (*models.Group, error)
	Create(ctx context.Context, group *models.Group) error
	Activate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// CreateGroupRequest describes payload for creating a group.
type CreateGroupRequest struct {
	Name string `json:"name" validate:"required"`
}

// GroupService coordinates group management and activation.
type GroupService struct {
	repo      groupRepository
	reloader  displayReloader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGroupService instantiates GroupService.
func NewGroupService(repo groupRepository, reloader displayReloader, validate *validator.Validate, logger *zap.Logger) *GroupService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroupService{repo: repo, reloader: reloader, validator: validate, logger: logger}
}

// List returns all groups.
func (s *GroupService) List(ctx context.Context) ([]models.Group, error) {
	groups, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list groups")
	}
	return groups, nil
}

// Create inserts a group. The first group ever created becomes active so
// the display is never without a selection.
func (s *GroupService) Create(ctx context.Context, req CreateGroupRequest) (*models.Group, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid group payload")
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list groups")
	}

	group := &models.Group{Name: req.Name, Active: len(existing) == 0}
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create group")
	}
	return group, nil
}

// Activate flags the given group as the one the engine resolves against.
func (s *GroupService) Activate(ctx context.Context, id string) error {
	if err := s.repo.Activate(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "group not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to activate group")
	}

	if s.reloader != nil {
		s.reloader.Reload(ctx)
	}
	return nil
}

// Delete removes a group and everything under it.
func (s *GroupService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "group not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete group")
	}

	if s.reloader != nil {
		s.reloader.Reload(ctx)
	}
	return nil
}
