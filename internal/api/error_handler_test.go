package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

func invoke(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest},
		{"invalid date", domain.ErrInvalidDate, http.StatusBadRequest},
		{"invalid time slot", domain.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"pending account", domain.ErrAccountPending, http.StatusForbidden},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"self action", domain.ErrSelfAction, http.StatusForbidden},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"classroom not found", domain.ErrClassroomNotFound, http.StatusNotFound},
		{"reservation not found", domain.ErrReservationNotFound, http.StatusNotFound},
		{"batch not found", domain.ErrBatchNotFound, http.StatusNotFound},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict},
		{"slot taken", domain.ErrSlotTaken, http.StatusConflict},
		{"no eligible slots", domain.ErrNoEligibleSlots, http.StatusUnprocessableEntity},
		{"echo error", echo.NewHTTPError(http.StatusTeapot, "kettle"), http.StatusTeapot},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := invoke(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("non-JSON error body: %s", rec.Body.String())
			}
			if _, ok := body["error"]; !ok {
				t.Fatalf("error envelope missing 'error' field: %s", rec.Body.String())
			}
		})
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec := invoke(t, errors.New("pq: connection refused to 10.0.0.5"))

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("non-JSON error body: %s", rec.Body.String())
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal details leaked to the client: %q", body["error"])
	}
}

func TestErrorHandler_BatchConflictPayload(t *testing.T) {
	err := &domain.BatchConflictError{Conflicts: []domain.SlotConflict{
		{Date: "2024-07-01", TimeSlot: "第一節", Holder: "愛麗絲"},
		{Date: "2024-07-03", TimeSlot: "第二節", Holder: "愛麗絲"},
	}}

	rec := invoke(t, err)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var body struct {
		Error     string                `json:"error"`
		Conflicts []domain.SlotConflict `json:"conflicts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("non-JSON error body: %s", rec.Body.String())
	}
	if len(body.Conflicts) != 2 {
		t.Fatalf("expected both conflicts in the payload, got %d", len(body.Conflicts))
	}
	if body.Conflicts[0].Holder != "愛麗絲" {
		t.Fatalf("conflict holder missing: %+v", body.Conflicts[0])
	}
}
