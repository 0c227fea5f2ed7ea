package vacation

import (
	"context"
	"errors"

	"github.com/resourceflow/resourceflow/pkg/member"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrUnknownEmployee  = errors.New("employee does not exist")
)

type VacationService interface {
	GetAll(ctx context.Context, employeeId int) ([]Vacation, error)
	Create(ctx context.Context, vacation Vacation) (Vacation, error)
	Update(ctx context.Context, vacation Vacation) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	DeleteByEmployee(ctx context.Context, employeeId int) (int, error)
}

type VacationServiceImpl struct {
	repo       VacationRepo
	memberRepo member.MemberRepo
}

func NewVacationService(repo VacationRepo, memberRepo member.MemberRepo) *VacationServiceImpl {
	return &VacationServiceImpl{repo: repo, memberRepo: memberRepo}
}

// GetAll lists vacations, restricted to one employee when employeeId > 0.
func (s *VacationServiceImpl) GetAll(ctx context.Context, employeeId int) ([]Vacation, error) {
	if employeeId > 0 {
		return s.repo.GetByEmployee(ctx, employeeId)
	}
	return s.repo.GetAll(ctx)
}

func (s *VacationServiceImpl) Create(ctx context.Context, vacation Vacation) (Vacation, error) {
	employee, err := s.validate(ctx, vacation)
	if err != nil {
		return Vacation{}, err
	}
	vacation.EmployeeName = employee.Name

	id, err := s.repo.Store(ctx, vacation)
	if err != nil {
		return Vacation{}, err
	}
	vacation.ID = id

	return vacation, nil
}

func (s *VacationServiceImpl) Update(ctx context.Context, vacation Vacation) (bool, error) {
	employee, err := s.validate(ctx, vacation)
	if err != nil {
		return false, err
	}
	vacation.EmployeeName = employee.Name

	updated, err := s.repo.Update(ctx, vacation)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("vacation not updated, probably because it does not exist (%d)", vacation.ID)
		return false, nil
	}
	return true, nil
}

func (s *VacationServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *VacationServiceImpl) DeleteByEmployee(ctx context.Context, employeeId int) (int, error) {
	deleted, err := s.repo.DeleteByEmployee(ctx, employeeId)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		log.Infof("removed %d vacation(s) of deleted team member %d", deleted, employeeId)
	}
	return deleted, nil
}

func (s *VacationServiceImpl) validate(ctx context.Context, vacation Vacation) (*member.Member, error) {
	if vacation.StartDate.IsZero() || vacation.EndDate.IsZero() {
		return nil, errors.New("start and end dates are required")
	}
	if vacation.StartDate.After(vacation.EndDate) {
		return nil, ErrInvalidDateRange
	}
	employee, err := s.memberRepo.GetById(ctx, vacation.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrUnknownEmployee
	}
	return employee, nil
}
