package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

// ReservationRepository is the gorm-backed booking ledger.
type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// CreateAll inserts every row inside one transaction. The first unique-index
// violation rolls the whole batch back and surfaces as ErrSlotTaken, so a
// multi-slot request never half-succeeds.
func (r *ReservationRepository) CreateAll(ctx context.Context, rows []*domain.Reservation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uint) (*domain.Reservation, error) {
	var row domain.Reservation
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *ReservationRepository) List(ctx context.Context, classroomID uint) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).Preload("User").Order("date, time_slot")
	if classroomID != 0 {
		q = q.Where("classroom_id = ?", classroomID)
	}
	var rows []domain.Reservation
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Reservation, error) {
	var rows []domain.Reservation
	err := r.db.WithContext(ctx).
		Preload("Classroom").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReservationRepository) FindHeld(ctx context.Context, classroomID uint, dates, timeSlots []string) ([]domain.Reservation, error) {
	var rows []domain.Reservation
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("classroom_id = ? AND date IN ? AND time_slot IN ?", classroomID, dates, timeSlots).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReservationRepository) ListRange(ctx context.Context, startDate, endDate string, classroomID uint) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Classroom").
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Order("date, time_slot")
	if classroomID != 0 {
		q = q.Where("classroom_id = ?", classroomID)
	}
	var rows []domain.Reservation
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Reservation{}, id).Error
}

func (r *ReservationRepository) DeleteByBatch(ctx context.Context, batchID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("batch_id = ?", batchID).Delete(&domain.Reservation{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
