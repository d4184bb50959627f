package ports

import (
	"context"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

// ClassroomInput carries the editable fields of a catalog entry.
type ClassroomInput struct {
	Name     string
	Capacity int
	Color    string
}

// ClassroomService implements catalog reads and administrator CRUD.
type ClassroomService interface {
	List(ctx context.Context) ([]domain.Classroom, error)
	Create(ctx context.Context, in ClassroomInput) (*domain.Classroom, error)
	Update(ctx context.Context, id uint, in ClassroomInput) (*domain.Classroom, error)
	Delete(ctx context.Context, id uint) error
}
