package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
	"github.com/schoolspace/classroom-reservation/internal/core/ports"
)

func TestExportCSV(t *testing.T) {
	repo := newStubReservationRepo()
	repo.rooms[1] = &domain.Classroom{ID: 1, Name: "多媒體教室"}
	repo.users[7] = &domain.User{ID: 7, Username: "alice", Nickname: "愛麗絲"}
	svc := NewExportService(repo)
	ctx := context.Background()

	// Seed out of order; the report must come back date-then-period sorted.
	if err := repo.CreateAll(ctx, []*domain.Reservation{
		{UserID: 7, ClassroomID: 1, Purpose: "b", Date: "2024-07-02", TimeSlot: "第一節"},
		{UserID: 7, ClassroomID: 1, Purpose: "c", Date: "2024-07-01", TimeSlot: "午休"},
		{UserID: 7, ClassroomID: 1, Purpose: "a", Date: "2024-07-01", TimeSlot: "第三節"},
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	body, filename, err := svc.ExportCSV(ctx, ports.ExportInput{StartDate: "2024-07-01", EndDate: "2024-07-31"})
	if err != nil {
		t.Fatalf("ExportCSV returned error: %v", err)
	}
	if filename != "reservations_2024-07-01_2024-07-31.csv" {
		t.Fatalf("unexpected filename: %s", filename)
	}
	if !bytes.HasPrefix(body, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("CSV must start with a UTF-8 BOM")
	}

	records, err := csv.NewReader(bytes.NewReader(body[3:])).ReadAll()
	if err != nil {
		t.Fatalf("report is not valid CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d records", len(records))
	}
	header := records[0]
	if header[0] != "date" || header[1] != "time_slot" || header[2] != "classroom" || header[3] != "holder" || header[4] != "purpose" {
		t.Fatalf("unexpected header: %v", header)
	}

	// 第三節 comes before 午休 in the timetable even though it sorts after
	// lexicographically.
	if records[1][0] != "2024-07-01" || records[1][1] != "第三節" {
		t.Fatalf("row 1 out of order: %v", records[1])
	}
	if records[2][0] != "2024-07-01" || records[2][1] != "午休" {
		t.Fatalf("row 2 out of order: %v", records[2])
	}
	if records[3][0] != "2024-07-02" {
		t.Fatalf("row 3 out of order: %v", records[3])
	}
	if records[1][2] != "多媒體教室" || records[1][3] != "愛麗絲" {
		t.Fatalf("classroom and holder names not resolved: %v", records[1])
	}
}

func TestExportCSV_FiltersByClassroom(t *testing.T) {
	repo := newStubReservationRepo()
	repo.rooms[1] = &domain.Classroom{ID: 1, Name: "A"}
	repo.rooms[2] = &domain.Classroom{ID: 2, Name: "B"}
	svc := NewExportService(repo)
	ctx := context.Background()

	if err := repo.CreateAll(ctx, []*domain.Reservation{
		{UserID: 7, ClassroomID: 1, Purpose: "x", Date: "2024-07-01", TimeSlot: "第一節"},
		{UserID: 7, ClassroomID: 2, Purpose: "y", Date: "2024-07-01", TimeSlot: "第二節"},
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	body, _, err := svc.ExportCSV(ctx, ports.ExportInput{StartDate: "2024-07-01", EndDate: "2024-07-01", ClassroomID: 2})
	if err != nil {
		t.Fatalf("ExportCSV returned error: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(body[3:])).ReadAll()
	if err != nil {
		t.Fatalf("report is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus 1 row, got %d records", len(records))
	}
	if records[1][2] != "B" {
		t.Fatalf("wrong classroom exported: %v", records[1])
	}
}

func TestExportCSV_Errors(t *testing.T) {
	repo := newStubReservationRepo()
	svc := NewExportService(repo)
	ctx := context.Background()

	if _, _, err := svc.ExportCSV(ctx, ports.ExportInput{StartDate: "2024-07-01", EndDate: "2024-07-31"}); !errors.Is(err, domain.ErrReservationNotFound) {
		t.Fatalf("empty range: expected ErrReservationNotFound, got %v", err)
	}
	if _, _, err := svc.ExportCSV(ctx, ports.ExportInput{StartDate: "not-a-date", EndDate: "2024-07-31"}); !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("bad start: expected ErrInvalidDate, got %v", err)
	}
	if _, _, err := svc.ExportCSV(ctx, ports.ExportInput{StartDate: "2024-07-31", EndDate: "2024-07-01"}); !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("inverted range: expected ErrInvalidDate, got %v", err)
	}
}
