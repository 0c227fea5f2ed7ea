package vacation

import (
	"context"
)

type StubVacationRepo struct {
	nextId int
	data   map[int]Vacation
}

func NewStubVacationRepo() *StubVacationRepo {
	return &StubVacationRepo{nextId: 0, data: map[int]Vacation{}}
}

func (s *StubVacationRepo) Store(ctx context.Context, vacation Vacation) (int, error) {
	s.nextId++
	vacation.ID = s.nextId
	s.data[vacation.ID] = vacation
	return vacation.ID, nil
}

func (s *StubVacationRepo) GetAll(ctx context.Context) ([]Vacation, error) {
	vacations := make([]Vacation, 0, len(s.data))
	for _, vacation := range s.data {
		vacations = append(vacations, vacation)
	}
	return vacations, nil
}

func (s *StubVacationRepo) GetByEmployee(ctx context.Context, employeeId int) ([]Vacation, error) {
	vacations := make([]Vacation, 0, len(s.data))
	for _, vacation := range s.data {
		if vacation.EmployeeID == employeeId {
			vacations = append(vacations, vacation)
		}
	}
	return vacations, nil
}

func (s *StubVacationRepo) Update(ctx context.Context, vacation Vacation) (bool, error) {
	if _, ok := s.data[vacation.ID]; !ok {
		return false, nil
	}
	s.data[vacation.ID] = vacation
	return true, nil
}

func (s *StubVacationRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubVacationRepo) DeleteByEmployee(ctx context.Context, employeeId int) (int, error) {
	deleted := 0
	for id, vacation := range s.data {
		if vacation.EmployeeID == employeeId {
			delete(s.data, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *StubVacationRepo) Cleanup() {
	s.data = map[int]Vacation{}
}
