package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
	"github.com/schoolspace/classroom-reservation/internal/core/ports"
)

// ClassroomService implements catalog reads and administrator CRUD. Listing
// goes through a read-through cache; any mutation drops the cached list.
type ClassroomService struct {
	repo   ports.ClassroomRepository
	cache  ports.ClassroomCache
	logger zerolog.Logger
}

func NewClassroomService(repo ports.ClassroomRepository, cache ports.ClassroomCache, logger zerolog.Logger) *ClassroomService {
	return &ClassroomService{repo: repo, cache: cache, logger: logger}
}

func (s *ClassroomService) List(ctx context.Context) ([]domain.Classroom, error) {
	if s.cache != nil {
		if rooms, ok := s.cache.GetList(ctx); ok {
			return rooms, nil
		}
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetList(ctx, rooms)
	}
	return rooms, nil
}

func (s *ClassroomService) Create(ctx context.Context, in ports.ClassroomInput) (*domain.Classroom, error) {
	room, err := s.repo.Create(ctx, &domain.Classroom{
		Name:     in.Name,
		Capacity: in.Capacity,
		Color:    in.Color,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Uint("classroom_id", room.ID).Str("name", room.Name).Msg("classroom created")
	return room, nil
}

func (s *ClassroomService) Update(ctx context.Context, id uint, in ports.ClassroomInput) (*domain.Classroom, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room.Name = in.Name
	room.Capacity = in.Capacity
	room.Color = in.Color
	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return room, nil
}

// Delete removes the room; its reservations go with it (cascade).
func (s *ClassroomService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Uint("classroom_id", id).Msg("classroom deleted")
	return nil
}

func (s *ClassroomService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
