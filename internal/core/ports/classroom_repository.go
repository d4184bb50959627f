package ports

import (
	"context"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

// ClassroomRepository defines persistence operations for the room catalog.
type ClassroomRepository interface {
	Create(ctx context.Context, room *domain.Classroom) (*domain.Classroom, error)
	FindByID(ctx context.Context, id uint) (*domain.Classroom, error)
	List(ctx context.Context) ([]domain.Classroom, error)
	Update(ctx context.Context, room *domain.Classroom) error
	// Delete removes the room; the database cascades to its reservations.
	Delete(ctx context.Context, id uint) error
}

// ClassroomCache is a read-through cache over the full catalog listing. The
// catalog is tiny and read on every calendar render, so the whole list is
// cached under one key and dropped on any admin mutation.
type ClassroomCache interface {
	// GetList returns the cached catalog and whether the cache was warm.
	GetList(ctx context.Context) ([]domain.Classroom, bool)
	SetList(ctx context.Context, rooms []domain.Classroom)
	Invalidate(ctx context.Context)
}
