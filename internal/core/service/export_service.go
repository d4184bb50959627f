package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
	"github.com/schoolspace/classroom-reservation/internal/core/ports"
)

// utf8BOM makes Excel open the file as UTF-8; the timetable labels are CJK.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportService renders the CSV reporting view over the ledger.
type ExportService struct {
	repo ports.ReservationRepository
}

func NewExportService(repo ports.ReservationRepository) *ExportService {
	return &ExportService{repo: repo}
}

// ExportCSV returns the report for the inclusive date range, sorted by date
// then timetable order. An empty result is a not-found condition so the
// caller does not download a header-only file.
func (s *ExportService) ExportCSV(ctx context.Context, in ports.ExportInput) ([]byte, string, error) {
	start, err := domain.ParseDate(in.StartDate)
	if err != nil {
		return nil, "", err
	}
	end, err := domain.ParseDate(in.EndDate)
	if err != nil {
		return nil, "", err
	}
	if end.Before(start) {
		return nil, "", domain.ErrInvalidDate
	}

	rows, err := s.repo.ListRange(ctx, in.StartDate, in.EndDate, in.ClassroomID)
	if err != nil {
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", domain.ErrReservationNotFound
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return domain.TimeSlotIndex(rows[i].TimeSlot) < domain.TimeSlotIndex(rows[j].TimeSlot)
	})

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "time_slot", "classroom", "holder", "purpose"}); err != nil {
		return nil, "", err
	}
	for _, r := range rows {
		classroom := strconv.FormatUint(uint64(r.ClassroomID), 10)
		if r.Classroom != nil {
			classroom = r.Classroom.Name
		}
		holder := ""
		if r.User != nil {
			holder = r.User.Nickname
		}
		if err := w.Write([]string{r.Date, r.TimeSlot, classroom, holder, r.Purpose}); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("reservations_%s_%s.csv", in.StartDate, in.EndDate)
	return buf.Bytes(), filename, nil
}
