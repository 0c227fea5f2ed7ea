package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/resourceflow/resourceflow/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidCountry = errors.New("country must be canada or brazil")

type MemberService interface {
	GetAll(ctx context.Context, onlyActive bool) ([]Member, error)
	Create(ctx context.Context, member Member) (Member, error)
	Update(ctx context.Context, member Member) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type MemberServiceImpl struct {
	repo MemberRepo
	bus  *event_bus.EventBus
}

func NewMemberService(repo MemberRepo, bus *event_bus.EventBus) *MemberServiceImpl {
	return &MemberServiceImpl{repo: repo, bus: bus}
}

func (s *MemberServiceImpl) GetAll(ctx context.Context, onlyActive bool) ([]Member, error) {
	return s.repo.GetAll(ctx, onlyActive)
}

func (s *MemberServiceImpl) Create(ctx context.Context, member Member) (Member, error) {
	if err := validate(member); err != nil {
		return Member{}, err
	}

	id, err := s.repo.Store(ctx, member)
	if err != nil {
		return Member{}, err
	}
	member.ID = id

	return member, nil
}

func (s *MemberServiceImpl) Update(ctx context.Context, member Member) (bool, error) {
	if err := validate(member); err != nil {
		return false, err
	}

	updated, err := s.repo.Update(ctx, member)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("team member not updated, probably because it does not exist (%d)", member.ID)
		return false, nil
	}
	return true, nil
}

func (s *MemberServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
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

	// Dependent allocations and vacations are removed by subscribers.
	event := event_bus.NewEvent(ctx, event_bus.TeamMemberDeletedEvent, event_bus.TeamMemberDeleted{
		MemberId: id,
		Name:     existing.Name,
	})
	if err := s.bus.Publish(event); err != nil {
		return true, fmt.Errorf("team member deleted, but cleanup failed: %w", err)
	}
	return true, nil
}

func validate(member Member) error {
	if member.Name == "" {
		return errors.New("name is required")
	}
	if !member.Country.IsValid() {
		return ErrInvalidCountry
	}
	return nil
}
