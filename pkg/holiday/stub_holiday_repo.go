package holiday

import (
	"context"
)

type StubHolidayRepo struct {
	nextId int
	data   map[int]Holiday
}

func NewStubHolidayRepo() *StubHolidayRepo {
	return &StubHolidayRepo{nextId: 0, data: map[int]Holiday{}}
}

func (s *StubHolidayRepo) Store(ctx context.Context, holiday Holiday) (int, error) {
	s.nextId++
	holiday.ID = s.nextId
	s.data[holiday.ID] = holiday
	return holiday.ID, nil
}

func (s *StubHolidayRepo) GetAll(ctx context.Context) ([]Holiday, error) {
	holidays := make([]Holiday, 0, len(s.data))
	for _, holiday := range s.data {
		holidays = append(holidays, holiday)
	}
	return holidays, nil
}

func (s *StubHolidayRepo) GetByYear(ctx context.Context, year int) ([]Holiday, error) {
	holidays := make([]Holiday, 0, len(s.data))
	for _, holiday := range s.data {
		if holiday.Date.Year() == year {
			holidays = append(holidays, holiday)
		}
	}
	return holidays, nil
}

func (s *StubHolidayRepo) Update(ctx context.Context, holiday Holiday) (bool, error) {
	if _, ok := s.data[holiday.ID]; !ok {
		return false, nil
	}
	s.data[holiday.ID] = holiday
	return true, nil
}

func (s *StubHolidayRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubHolidayRepo) Cleanup() {
	s.data = map[int]Holiday{}
}
