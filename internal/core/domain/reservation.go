package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingFields       = errors.New("missing required fields")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrForbidden           = errors.New("access forbidden")
	ErrSlotTaken           = errors.New("time slot already booked")
	ErrNoEligibleSlots     = errors.New("no eligible slots in range")
	ErrBatchNotFound       = errors.New("batch not found")
	ErrInvalidTimeSlot     = errors.New("invalid time slot")
	ErrInvalidDate         = errors.New("invalid date")
)

// DateLayout is the wire and storage format for reservation dates. Dates are
// plain calendar days with no timezone.
const DateLayout = "2006-01-02"

// TimeSlots is the fixed school timetable, in display order.
var TimeSlots = []string{
	"第一節",
	"第二節",
	"第三節",
	"第四節",
	"午休",
	"第五節",
	"第六節",
	"第七節",
	"第八節",
	"晚上",
}

var timeSlotOrder = func() map[string]int {
	m := make(map[string]int, len(TimeSlots))
	for i, s := range TimeSlots {
		m[s] = i
	}
	return m
}()

// ValidTimeSlot reports whether label names a known period.
func ValidTimeSlot(label string) bool {
	_, ok := timeSlotOrder[label]
	return ok
}

// TimeSlotIndex returns the timetable position of label, or -1 when unknown.
// Used to sort reservations chronologically within a day.
func TimeSlotIndex(label string) int {
	if i, ok := timeSlotOrder[label]; ok {
		return i
	}
	return -1
}

// ParseDate validates a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Slot identifies one bookable period: a calendar day plus a timetable label.
type Slot struct {
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
}

// Reservation is one row in the booking ledger. The two composite unique
// indexes enforce that a holder cannot be in two places at once and that a
// room cannot be double-booked.
type Reservation struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:uniq_holder_slot"`
	ClassroomID uint       `json:"classroom_id" gorm:"not null;uniqueIndex:uniq_room_slot"`
	Purpose     string     `json:"purpose" gorm:"size:255;not null"`
	Date        string     `json:"date" gorm:"size:10;not null;uniqueIndex:uniq_holder_slot;uniqueIndex:uniq_room_slot"`
	TimeSlot    string     `json:"time_slot" gorm:"size:16;not null;uniqueIndex:uniq_holder_slot;uniqueIndex:uniq_room_slot"`
	BatchID     *string    `json:"batch_id,omitempty" gorm:"size:32;index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	User        *User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Classroom   *Classroom `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// SlotConflict describes one candidate slot that is already held, so a
// caller can adjust a batch request without guessing.
type SlotConflict struct {
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
	Holder   string `json:"holder"`
}

// BatchConflictError aborts a batch lock whose precheck found existing
// reservations. It carries every colliding candidate, not just the first.
type BatchConflictError struct {
	Conflicts []SlotConflict
}

func (e *BatchConflictError) Error() string {
	return fmt.Sprintf("%d requested slots already booked", len(e.Conflicts))
}
