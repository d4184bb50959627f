package ports

import (
	"context"
	"time"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

// BookingInput carries one booking request: a set of desired slots for a
// single classroom, all owned by the requester.
type BookingInput struct {
	ClassroomID uint
	Purpose     string
	Slots       []domain.Slot
}

// BatchLockInput carries an administrative batch-lock request. Start and end
// dates are inclusive; weekdays follow time.Weekday numbering (0 = Sunday).
type BatchLockInput struct {
	ClassroomID uint
	Purpose     string
	StartDate   string
	EndDate     string
	TimeSlots   []string
	Weekdays    []time.Weekday
}

// BatchLockResult reports a successful batch lock.
type BatchLockResult struct {
	BatchID string
	Created int
}

// ReservationView is a ledger row flattened for display, with the holder's
// nickname and classroom name resolved.
type ReservationView struct {
	ID            uint   `json:"id"`
	ClassroomID   uint   `json:"classroomId"`
	ClassroomName string `json:"classroomName,omitempty"`
	UserID        uint   `json:"userId"`
	UserNickname  string `json:"userNickname,omitempty"`
	Purpose       string `json:"purpose"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
	BatchID       string `json:"batchId,omitempty"`
}

// ReservationService implements the booking ledger workflows.
type ReservationService interface {
	// List returns all reservations, optionally filtered by classroom.
	List(ctx context.Context, classroomID uint) ([]ReservationView, error)
	// ListMine returns the caller's own reservations, newest date first.
	ListMine(ctx context.Context, actor domain.Identity) ([]ReservationView, error)
	// Book creates every requested slot or none of them. A collision with
	// either uniqueness invariant yields domain.ErrSlotTaken.
	Book(ctx context.Context, actor domain.Identity, in BookingInput) ([]ReservationView, error)
	// Delete removes one reservation; only the holder or an administrator
	// may do so.
	Delete(ctx context.Context, actor domain.Identity, id uint) error
	// BatchLock expands the request into candidate slots, prechecks the
	// ledger, and inserts all candidates under a fresh batch tag. Existing
	// overlaps abort the whole batch with a *domain.BatchConflictError.
	BatchLock(ctx context.Context, actor domain.Identity, in BatchLockInput) (*BatchLockResult, error)
	// DeleteBatch removes every reservation tagged with batchID; an unknown
	// tag yields domain.ErrBatchNotFound.
	DeleteBatch(ctx context.Context, batchID string) (int64, error)
}

// ExportInput carries the CSV report parameters. ClassroomID == 0 exports
// all classrooms.
type ExportInput struct {
	StartDate   string
	EndDate     string
	ClassroomID uint
}

// ExportService renders the reporting view over the ledger.
type ExportService interface {
	// ExportCSV returns the report body and a suggested file name. An empty
	// date range yields domain.ErrReservationNotFound.
	ExportCSV(ctx context.Context, in ExportInput) ([]byte, string, error)
}
