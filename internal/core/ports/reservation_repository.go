package ports

import (
	"context"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

// ReservationRepository defines persistence operations for the booking
// ledger. Multi-row creation is atomic: implementations must discard every
// row of a call that fails part-way through.
type ReservationRepository interface {
	// CreateAll inserts all rows inside one transaction. A violation of
	// either composite unique index is reported as domain.ErrSlotTaken and
	// leaves no rows behind.
	CreateAll(ctx context.Context, rows []*domain.Reservation) error
	FindByID(ctx context.Context, id uint) (*domain.Reservation, error)
	// List returns reservations with their holder preloaded, optionally
	// restricted to one classroom (classroomID == 0 means all).
	List(ctx context.Context, classroomID uint) ([]domain.Reservation, error)
	// ListByUser returns a holder's reservations with classrooms preloaded,
	// newest date first.
	ListByUser(ctx context.Context, userID uint) ([]domain.Reservation, error)
	// FindHeld returns existing reservations for the classroom whose date
	// and time slot both appear in the given sets, holders preloaded. Used
	// by the batch-lock precheck; callers still match exact (date, slot)
	// pairs against the result.
	FindHeld(ctx context.Context, classroomID uint, dates, timeSlots []string) ([]domain.Reservation, error)
	// ListRange returns reservations between two dates inclusive, holder
	// and classroom preloaded, optionally restricted to one classroom.
	ListRange(ctx context.Context, startDate, endDate string, classroomID uint) ([]domain.Reservation, error)
	Delete(ctx context.Context, id uint) error
	// DeleteByBatch removes every row tagged with batchID and reports how
	// many were deleted.
	DeleteByBatch(ctx context.Context, batchID string) (int64, error)
}
