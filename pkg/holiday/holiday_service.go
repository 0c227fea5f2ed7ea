package holiday

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

var ErrInvalidCountry = errors.New("country must be canada, brazil or both")

type HolidayService interface {
	GetAll(ctx context.Context, year int) ([]Holiday, error)
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	Update(ctx context.Context, holiday Holiday) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type HolidayServiceImpl struct {
	repo HolidayRepo
}

func NewHolidayService(repo HolidayRepo) *HolidayServiceImpl {
	return &HolidayServiceImpl{repo: repo}
}

// GetAll lists holidays, restricted to a single year when year > 0.
func (s *HolidayServiceImpl) GetAll(ctx context.Context, year int) ([]Holiday, error) {
	if year > 0 {
		return s.repo.GetByYear(ctx, year)
	}
	return s.repo.GetAll(ctx)
}

func (s *HolidayServiceImpl) Create(ctx context.Context, holiday Holiday) (Holiday, error) {
	if err := validate(holiday); err != nil {
		return Holiday{}, err
	}

	id, err := s.repo.Store(ctx, holiday)
	if err != nil {
		return Holiday{}, err
	}
	holiday.ID = id

	return holiday, nil
}

func (s *HolidayServiceImpl) Update(ctx context.Context, holiday Holiday) (bool, error) {
	if err := validate(holiday); err != nil {
		return false, err
	}

	updated, err := s.repo.Update(ctx, holiday)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("holiday not updated, probably because it does not exist (%d)", holiday.ID)
		return false, nil
	}
	return true, nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func validate(holiday Holiday) error {
	if holiday.Name == "" {
		return errors.New("name is required")
	}
	if holiday.Date.IsZero() {
		return errors.New("date is required")
	}
	if !holiday.Country.IsValid() {
		return ErrInvalidCountry
	}
	return nil
}
