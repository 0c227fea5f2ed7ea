package member

import (
	"context"
)

type StubMemberRepo struct {
	nextId int
	data   map[int]Member
}

func NewStubMemberRepo() *StubMemberRepo {
	return &StubMemberRepo{nextId: 0, data: map[int]Member{}}
}

func (s *StubMemberRepo) Store(ctx context.Context, member Member) (int, error) {
	s.nextId++
	member.ID = s.nextId
	s.data[member.ID] = member
	return member.ID, nil
}

func (s *StubMemberRepo) GetAll(ctx context.Context, onlyActive bool) ([]Member, error) {
	members := make([]Member, 0, len(s.data))
	for _, member := range s.data {
		if member.Active || !onlyActive {
			members = append(members, member)
		}
	}
	return members, nil
}

func (s *StubMemberRepo) GetById(ctx context.Context, id int) (*Member, error) {
	member, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	return &member, nil
}

func (s *StubMemberRepo) Update(ctx context.Context, member Member) (bool, error) {
	if _, ok := s.data[member.ID]; !ok {
		return false, nil
	}
	s.data[member.ID] = member
	return true, nil
}

func (s *StubMemberRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubMemberRepo) Cleanup() {
	s.data = map[int]Member{}
}
