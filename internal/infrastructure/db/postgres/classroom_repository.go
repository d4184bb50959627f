package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

// ClassroomRepository is the gorm-backed room catalog.
type ClassroomRepository struct {
	db *gorm.DB
}

func NewClassroomRepository(db *gorm.DB) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

func (r *ClassroomRepository) Create(ctx context.Context, room *domain.Classroom) (*domain.Classroom, error) {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		return nil, err
	}
	return room, nil
}

func (r *ClassroomRepository) FindByID(ctx context.Context, id uint) (*domain.Classroom, error) {
	var room domain.Classroom
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClassroomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *ClassroomRepository) List(ctx context.Context) ([]domain.Classroom, error) {
	var rooms []domain.Classroom
	if err := r.db.WithContext(ctx).Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *ClassroomRepository) Update(ctx context.Context, room *domain.Classroom) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *ClassroomRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Classroom{}, id).Error
}
