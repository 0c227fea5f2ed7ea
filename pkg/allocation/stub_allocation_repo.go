package allocation

import (
	"context"
)

type StubAllocationRepo struct {
	nextId int
	data   map[int]Allocation
}

func NewStubAllocationRepo() *StubAllocationRepo {
	return &StubAllocationRepo{nextId: 0, data: map[int]Allocation{}}
}

func (s *StubAllocationRepo) Store(ctx context.Context, allocation Allocation) (int, error) {
	s.nextId++
	allocation.ID = s.nextId
	s.data[allocation.ID] = allocation
	return allocation.ID, nil
}

func (s *StubAllocationRepo) GetAll(ctx context.Context, filter Filter) ([]Allocation, error) {
	allocations := make([]Allocation, 0, len(s.data))
	for _, allocation := range s.data {
		if filter.EmployeeID > 0 && allocation.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.ProjectID > 0 && allocation.ProjectID != filter.ProjectID {
			continue
		}
		if !filter.From.IsZero() && allocation.EndDate.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && allocation.StartDate.After(filter.To) {
			continue
		}
		allocations = append(allocations, allocation)
	}
	return allocations, nil
}

func (s *StubAllocationRepo) GetById(ctx context.Context, id int) (*Allocation, error) {
	allocation, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	return &allocation, nil
}

func (s *StubAllocationRepo) Update(ctx context.Context, allocation Allocation) (bool, error) {
	if _, ok := s.data[allocation.ID]; !ok {
		return false, nil
	}
	s.data[allocation.ID] = allocation
	return true, nil
}

func (s *StubAllocationRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubAllocationRepo) DeleteByProject(ctx context.Context, projectId int) (int, error) {
	deleted := 0
	for id, allocation := range s.data {
		if allocation.ProjectID == projectId {
			delete(s.data, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *StubAllocationRepo) DeleteByEmployee(ctx context.Context, employeeId int) (int, error) {
	deleted := 0
	for id, allocation := range s.data {
		if allocation.EmployeeID == employeeId {
			delete(s.data, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *StubAllocationRepo) Cleanup() {
	s.data = map[int]Allocation{}
}
