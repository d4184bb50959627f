package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
	"github.com/schoolspace/classroom-reservation/internal/core/ports"
)

// ReservationService implements the booking ledger workflows.
type ReservationService struct {
	repo      ports.ReservationRepository
	classroom ports.ClassroomRepository
	logger    zerolog.Logger
}

func NewReservationService(repo ports.ReservationRepository, classroom ports.ClassroomRepository, logger zerolog.Logger) *ReservationService {
	return &ReservationService{repo: repo, classroom: classroom, logger: logger}
}

func (s *ReservationService) List(ctx context.Context, classroomID uint) ([]ports.ReservationView, error) {
	rows, err := s.repo.List(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	return toViews(rows), nil
}

func (s *ReservationService) ListMine(ctx context.Context, actor domain.Identity) ([]ports.ReservationView, error) {
	rows, err := s.repo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return toViews(rows), nil
}

// Book creates every requested slot or none of them. Validation happens
// before any storage call; atomicity is the repository's transaction, and a
// unique-index violation on either invariant surfaces as ErrSlotTaken.
func (s *ReservationService) Book(ctx context.Context, actor domain.Identity, in ports.BookingInput) ([]ports.ReservationView, error) {
	if in.ClassroomID == 0 || in.Purpose == "" || len(in.Slots) == 0 {
		return nil, domain.ErrMissingFields
	}
	for _, slot := range in.Slots {
		if _, err := domain.ParseDate(slot.Date); err != nil {
			return nil, err
		}
		if !domain.ValidTimeSlot(slot.TimeSlot) {
			return nil, domain.ErrInvalidTimeSlot
		}
	}

	if _, err := s.classroom.FindByID(ctx, in.ClassroomID); err != nil {
		return nil, err
	}

	rows := make([]*domain.Reservation, 0, len(in.Slots))
	for _, slot := range in.Slots {
		rows = append(rows, &domain.Reservation{
			UserID:      actor.UserID,
			ClassroomID: in.ClassroomID,
			Purpose:     in.Purpose,
			Date:        slot.Date,
			TimeSlot:    slot.TimeSlot,
		})
	}

	if err := s.repo.CreateAll(ctx, rows); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			s.logger.Info().
				Uint("user_id", actor.UserID).
				Uint("classroom_id", in.ClassroomID).
				Int("slots", len(in.Slots)).
				Msg("booking rejected: slot conflict")
		}
		return nil, err
	}

	s.logger.Info().
		Uint("user_id", actor.UserID).
		Uint("classroom_id", in.ClassroomID).
		Int("slots", len(rows)).
		Msg("reservation created")

	views := toViews(derefAll(rows))
	return views, nil
}

// Delete removes one reservation if the caller holds it or is an
// administrator.
func (s *ReservationService) Delete(ctx context.Context, actor domain.Identity, id uint) error {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && row.UserID != actor.UserID {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// BatchLock expands the date range and weekday filter into candidate slots,
// prechecks the whole set against the ledger, and inserts all candidates
// under a fresh batch tag. The precheck and insert are two store calls; the
// window between them is accepted at this request volume, and the unique
// indexes turn a slip-through into a plain ErrSlotTaken.
func (s *ReservationService) BatchLock(ctx context.Context, actor domain.Identity, in ports.BatchLockInput) (*ports.BatchLockResult, error) {
	candidates, err := expandCandidates(in)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNoEligibleSlots
	}

	if _, err := s.classroom.FindByID(ctx, in.ClassroomID); err != nil {
		return nil, err
	}

	conflicts, err := s.findConflicts(ctx, in.ClassroomID, candidates)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		s.logger.Info().
			Uint("classroom_id", in.ClassroomID).
			Int("conflicts", len(conflicts)).
			Msg("batch lock rejected: existing reservations")
		return nil, &domain.BatchConflictError{Conflicts: conflicts}
	}

	batchID := newBatchID()
	rows := make([]*domain.Reservation, 0, len(candidates))
	for _, c := range candidates {
		tag := batchID
		rows = append(rows, &domain.Reservation{
			UserID:      actor.UserID,
			ClassroomID: in.ClassroomID,
			Purpose:     in.Purpose,
			Date:        c.Date,
			TimeSlot:    c.TimeSlot,
			BatchID:     &tag,
		})
	}

	if err := s.repo.CreateAll(ctx, rows); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("batch_id", batchID).
		Uint("classroom_id", in.ClassroomID).
		Int("slots", len(rows)).
		Msg("batch lock created")

	return &ports.BatchLockResult{BatchID: batchID, Created: len(rows)}, nil
}

// DeleteBatch removes every reservation tagged with batchID. Zero deletions
// means the tag does not exist; tags are caller-supplied and typos are
// likely, so that is reported, not swallowed.
func (s *ReservationService) DeleteBatch(ctx context.Context, batchID string) (int64, error) {
	if batchID == "" {
		return 0, domain.ErrBatchNotFound
	}
	count, err := s.repo.DeleteByBatch(ctx, batchID)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, domain.ErrBatchNotFound
	}

	s.logger.Info().Str("batch_id", batchID).Int64("deleted", count).Msg("batch deleted")
	return count, nil
}

// expandCandidates enumerates qualifying dates × requested time slots.
func expandCandidates(in ports.BatchLockInput) ([]domain.Slot, error) {
	if in.ClassroomID == 0 || in.Purpose == "" || len(in.TimeSlots) == 0 || len(in.Weekdays) == 0 {
		return nil, domain.ErrMissingFields
	}
	start, err := domain.ParseDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidDate
	}
	for _, label := range in.TimeSlots {
		if !domain.ValidTimeSlot(label) {
			return nil, domain.ErrInvalidTimeSlot
		}
	}

	wanted := make(map[time.Weekday]struct{}, len(in.Weekdays))
	for _, wd := range in.Weekdays {
		wanted[wd] = struct{}{}
	}

	var candidates []domain.Slot
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if _, ok := wanted[day.Weekday()]; !ok {
			continue
		}
		date := day.Format(domain.DateLayout)
		for _, label := range in.TimeSlots {
			candidates = append(candidates, domain.Slot{Date: date, TimeSlot: label})
		}
	}
	return candidates, nil
}

// findConflicts matches the candidate set against existing rows for the
// classroom and reports every collision with its current holder.
func (s *ReservationService) findConflicts(ctx context.Context, classroomID uint, candidates []domain.Slot) ([]domain.SlotConflict, error) {
	dates := make([]string, 0, len(candidates))
	slots := make([]string, 0, len(candidates))
	seen := make(map[string]struct{})
	for _, c := range candidates {
		if _, ok := seen["d"+c.Date]; !ok {
			seen["d"+c.Date] = struct{}{}
			dates = append(dates, c.Date)
		}
		if _, ok := seen["t"+c.TimeSlot]; !ok {
			seen["t"+c.TimeSlot] = struct{}{}
			slots = append(slots, c.TimeSlot)
		}
	}

	held, err := s.repo.FindHeld(ctx, classroomID, dates, slots)
	if err != nil {
		return nil, err
	}
	if len(held) == 0 {
		return nil, nil
	}

	holders := make(map[string]string, len(held))
	for _, r := range held {
		nickname := ""
		if r.User != nil {
			nickname = r.User.Nickname
		}
		holders[r.Date+"|"+r.TimeSlot] = nickname
	}

	var conflicts []domain.SlotConflict
	for _, c := range candidates {
		if holder, ok := holders[c.Date+"|"+c.TimeSlot]; ok {
			conflicts = append(conflicts, domain.SlotConflict{
				Date:     c.Date,
				TimeSlot: c.TimeSlot,
				Holder:   holder,
			})
		}
	}
	return conflicts, nil
}

// newBatchID returns an opaque tag in the format BATCH-XXXXXXXX.
func newBatchID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("BATCH-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("BATCH-%08X", b)
}

func toViews(rows []domain.Reservation) []ports.ReservationView {
	views := make([]ports.ReservationView, 0, len(rows))
	for _, r := range rows {
		v := ports.ReservationView{
			ID:          r.ID,
			ClassroomID: r.ClassroomID,
			UserID:      r.UserID,
			Purpose:     r.Purpose,
			Date:        r.Date,
			TimeSlot:    r.TimeSlot,
		}
		if r.BatchID != nil {
			v.BatchID = *r.BatchID
		}
		if r.User != nil {
			v.UserNickname = r.User.Nickname
		}
		if r.Classroom != nil {
			v.ClassroomName = r.Classroom.Name
		}
		views = append(views, v)
	}
	return views
}

func derefAll(rows []*domain.Reservation) []domain.Reservation {
	out := make([]domain.Reservation, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	return out
}
