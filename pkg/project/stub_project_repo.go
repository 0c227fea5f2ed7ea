package project

import (
	"context"
)

type StubProjectRepo struct {
	nextId int
	data   map[int]Project
}

func NewStubProjectRepo() *StubProjectRepo {
	return &StubProjectRepo{nextId: 0, data: map[int]Project{}}
}

func (s *StubProjectRepo) Store(ctx context.Context, project Project) (int, error) {
	s.nextId++
	project.ID = s.nextId
	s.data[project.ID] = project
	return project.ID, nil
}

func (s *StubProjectRepo) GetAll(ctx context.Context) ([]Project, error) {
	projects := make([]Project, 0, len(s.data))
	for _, project := range s.data {
		projects = append(projects, project)
	}
	return projects, nil
}

func (s *StubProjectRepo) GetById(ctx context.Context, id int) (*Project, error) {
	project, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	return &project, nil
}

func (s *StubProjectRepo) Update(ctx context.Context, project Project) (bool, error) {
	if _, ok := s.data[project.ID]; !ok {
		return false, nil
	}
	s.data[project.ID] = project
	return true, nil
}

func (s *StubProjectRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubProjectRepo) Cleanup() {
	s.data = map[int]Project{}
}
