package allocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrOverlap is returned when an employee already holds an allocation for
	// the same project covering any day of the requested range.
	ErrOverlap          = errors.New("employee already allocated to this project in the given date range")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrInvalidHours     = errors.New("hoursPerDay must be greater than zero")
	ErrNotFound         = errors.New("allocation not found")
)

// ResizeEdge names which end of an allocation a calendar resize drags.
type ResizeEdge string

const (
	EdgeStart ResizeEdge = "start"
	EdgeEnd   ResizeEdge = "end"
)

type AllocationService interface {
	GetAll(ctx context.Context, filter Filter) ([]Allocation, error)
	Create(ctx context.Context, allocation Allocation) (Allocation, error)
	Update(ctx context.Context, allocation Allocation) (Allocation, error)
	Delete(ctx context.Context, id int) (bool, error)
	Shift(ctx context.Context, id int, days int) (Allocation, error)
	Resize(ctx context.Context, id int, edge ResizeEdge, date time.Time) (Allocation, error)
	DeleteByProject(ctx context.Context, projectId int) (int, error)
	DeleteByEmployee(ctx context.Context, employeeId int) (int, error)
}

type AllocationServiceImpl struct {
	repo AllocationRepo
}

func NewAllocationService(repo AllocationRepo) *AllocationServiceImpl {
	return &AllocationServiceImpl{repo: repo}
}

func (s *AllocationServiceImpl) GetAll(ctx context.Context, filter Filter) ([]Allocation, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *AllocationServiceImpl) Create(ctx context.Context, allocation Allocation) (Allocation, error) {
	if allocation.Status == "" {
		allocation.Status = StatusActive
	}
	if err := validate(allocation); err != nil {
		return Allocation{}, err
	}
	if err := s.checkOverlap(ctx, allocation); err != nil {
		return Allocation{}, err
	}

	id, err := s.repo.Store(ctx, allocation)
	if err != nil {
		return Allocation{}, err
	}
	allocation.ID = id

	return allocation, nil
}

func (s *AllocationServiceImpl) Update(ctx context.Context, allocation Allocation) (Allocation, error) {
	if err := validate(allocation); err != nil {
		return Allocation{}, err
	}
	if err := s.checkOverlap(ctx, allocation); err != nil {
		return Allocation{}, err
	}

	updated, err := s.repo.Update(ctx, allocation)
	if err != nil {
		return Allocation{}, err
	}
	if !updated {
		log.Warnf("allocation not updated, probably because it does not exist (%d)", allocation.ID)
		return Allocation{}, ErrNotFound
	}
	return allocation, nil
}

func (s *AllocationServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// Shift moves an allocation's whole date range by the given number of days.
// Negative values move it earlier. This backs the calendar drag interaction.
func (s *AllocationServiceImpl) Shift(ctx context.Context, id int, days int) (Allocation, error) {
	existing, err := s.repo.GetById(ctx, id)
	if err != nil {
		return Allocation{}, err
	}
	if existing == nil {
		return Allocation{}, ErrNotFound
	}

	shifted := *existing
	shifted.StartDate = existing.StartDate.AddDate(0, 0, days)
	shifted.EndDate = existing.EndDate.AddDate(0, 0, days)

	return s.Update(ctx, shifted)
}

// Resize moves one edge of an allocation to the given date, keeping the other
// edge fixed. This backs the calendar edge-drag interaction.
func (s *AllocationServiceImpl) Resize(ctx context.Context, id int, edge ResizeEdge, date time.Time) (Allocation, error) {
	existing, err := s.repo.GetById(ctx, id)
	if err != nil {
		return Allocation{}, err
	}
	if existing == nil {
		return Allocation{}, ErrNotFound
	}

	resized := *existing
	switch edge {
	case EdgeStart:
		resized.StartDate = date
	case EdgeEnd:
		resized.EndDate = date
	default:
		return Allocation{}, fmt.Errorf("unknown resize edge %q", edge)
	}

	return s.Update(ctx, resized)
}

func (s *AllocationServiceImpl) DeleteByProject(ctx context.Context, projectId int) (int, error) {
	deleted, err := s.repo.DeleteByProject(ctx, projectId)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		log.Infof("removed %d allocation(s) of deleted project %d", deleted, projectId)
	}
	return deleted, nil
}

func (s *AllocationServiceImpl) DeleteByEmployee(ctx context.Context, employeeId int) (int, error) {
	deleted, err := s.repo.DeleteByEmployee(ctx, employeeId)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		log.Infof("removed %d allocation(s) of deleted team member %d", deleted, employeeId)
	}
	return deleted, nil
}

// checkOverlap rejects a write when the same employee+project pair already has
// an allocation touching the requested range. The allocation being written is
// excluded so moves and resizes don't conflict with themselves.
func (s *AllocationServiceImpl) checkOverlap(ctx context.Context, allocation Allocation) error {
	others, err := s.repo.GetAll(ctx, Filter{
		EmployeeID: allocation.EmployeeID,
		ProjectID:  allocation.ProjectID,
		From:       allocation.StartDate,
		To:         allocation.EndDate,
	})
	if err != nil {
		return err
	}
	for _, other := range others {
		if other.ID != allocation.ID {
			return ErrOverlap
		}
	}
	return nil
}

func validate(allocation Allocation) error {
	if allocation.EmployeeID <= 0 || allocation.ProjectID <= 0 {
		return errors.New("employeeId and projectId are required")
	}
	if allocation.StartDate.IsZero() || allocation.EndDate.IsZero() {
		return errors.New("start and end dates are required")
	}
	if allocation.StartDate.After(allocation.EndDate) {
		return ErrInvalidDateRange
	}
	if allocation.HoursPerDay <= 0 {
		return ErrInvalidHours
	}
	if !allocation.Status.IsValid() {
		return fmt.Errorf("unknown allocation status %q", allocation.Status)
	}
	return nil
}
