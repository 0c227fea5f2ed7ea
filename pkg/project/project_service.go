package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/resourceflow/resourceflow/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidStatus    = errors.New("status must be one of: active, on_hold, finished, cancelled")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

type ProjectService interface {
	GetAll(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, project Project) (Project, error)
	Update(ctx context.Context, project Project) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ProjectServiceImpl struct {
	repo ProjectRepo
	bus  *event_bus.EventBus
}

func NewProjectService(repo ProjectRepo, bus *event_bus.EventBus) *ProjectServiceImpl {
	return &ProjectServiceImpl{repo: repo, bus: bus}
}

func (s *ProjectServiceImpl) GetAll(ctx context.Context) ([]Project, error) {
	return s.repo.GetAll(ctx)
}

func (s *ProjectServiceImpl) Create(ctx context.Context, project Project) (Project, error) {
	if project.Status == "" {
		project.Status = StatusActive
	}
	if err := validate(project); err != nil {
		return Project{}, err
	}

	id, err := s.repo.Store(ctx, project)
	if err != nil {
		return Project{}, err
	}
	project.ID = id

	return project, nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, project Project) (bool, error) {
	if err := validate(project); err != nil {
		return false, err
	}

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("project not updated, probably because it does not exist (%d)", project.ID)
		return false, nil
	}
	return true, nil
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	existing, err := s.repo.GetById(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}

	// Allocations of the deleted project are removed by subscribers;
	// other projects' allocations stay untouched.
	event := event_bus.NewEvent(ctx, event_bus.ProjectDeletedEvent, event_bus.ProjectDeleted{
		ProjectId: id,
		Name:      existing.Name,
	})
	if err := s.bus.Publish(event); err != nil {
		return true, fmt.Errorf("project deleted, but cleanup failed: %w", err)
	}
	return true, nil
}

func validate(project Project) error {
	if project.Name == "" {
		return errors.New("name is required")
	}
	if !project.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !project.StartDate.IsZero() && !project.EndDate.IsZero() && project.StartDate.After(project.EndDate) {
		return ErrInvalidDateRange
	}
	return nil
}
