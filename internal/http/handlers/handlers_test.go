package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"service-schedule/internal/domain"
	"service-schedule/internal/schedule"
	"service-schedule/internal/service"
)

type stubSource struct {
	entries []domain.ScheduleEntry
	err     error
}

func (s *stubSource) ListEntries(ctx context.Context) ([]domain.ScheduleEntry, error) {
	return s.entries, s.err
}

func newMux(t *testing.T, source *stubSource) *http.ServeMux {
	t.Helper()
	svc := service.NewScheduleService(source, service.Options{Locale: schedule.English, Location: time.UTC}, nil)
	if err := svc.Refresh(context.Background()); err != nil && source.err == nil {
		t.Fatalf("Refresh: %v", err)
	}
	// Monday 4 March 2024, 09:10 UTC.
	svc.Tick(time.Date(2024, time.March, 4, 9, 10, 0, 0, time.UTC))

	mux := http.NewServeMux()
	NewScheduleHandler(svc).Register(mux)
	NewAdminHandler(svc).Register(mux)
	return mux
}

func sampleEntries() []domain.ScheduleEntry {
	return []domain.ScheduleEntry{
		{ID: 3, Day: "Tuesday", CourseName: "Networks", StartTime: "07:30", EndTime: "09:10"},
		{ID: 2, Day: "Monday", CourseName: "Physics", StartTime: "10:00", EndTime: "11:40"},
		{ID: 1, Day: "Monday", CourseName: "Algebra", StartTime: "08:00", EndTime: "09:40"},
	}
}

func TestNowReturnsBoard(t *testing.T) {
	mux := newMux(t, &stubSource{entries: sampleEntries()})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule/now", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var board domain.Board
	if err := json.NewDecoder(rec.Body).Decode(&board); err != nil {
		t.Fatalf("decode board: %v", err)
	}
	if board.CurrentClass == nil || board.CurrentClass.ID != 1 {
		t.Fatalf("current_class = %+v, want entry 1", board.CurrentClass)
	}
	if board.NextClass == nil || board.NextClass.ID != 2 || board.Countdown != "50M" {
		t.Fatalf("next_class = %+v countdown %q", board.NextClass, board.Countdown)
	}
}

func TestListFiltersByDay(t *testing.T) {
	mux := newMux(t, &stubSource{entries: sampleEntries()})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule?day=monday", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Day     string             `json:"day"`
		Entries []domain.EntryView `json:"entries"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if body.Day != "monday" || len(body.Entries) != 2 {
		t.Fatalf("list = %+v", body)
	}
	if body.Entries[0].ID != 1 || !body.Entries[0].Active || body.Entries[1].ID != 2 || body.Entries[1].Active {
		t.Fatalf("entries = %+v", body.Entries)
	}
}

func TestListAllDaysInRankOrder(t *testing.T) {
	mux := newMux(t, &stubSource{entries: sampleEntries()})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule", nil))

	var body struct {
		Entries []domain.EntryView `json:"entries"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(body.Entries) != 3 || body.Entries[0].ID != 1 || body.Entries[1].ID != 2 || body.Entries[2].ID != 3 {
		t.Fatalf("entries = %+v", body.Entries)
	}
}

func TestDays(t *testing.T) {
	mux := newMux(t, &stubSource{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule/days", nil))

	var body struct {
		Days []string `json:"days"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode days: %v", err)
	}
	if len(body.Days) != 5 || body.Days[0] != "Monday" || body.Days[4] != "Friday" {
		t.Fatalf("days = %v", body.Days)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newMux(t, &stubSource{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/schedule"},
		{http.MethodDelete, "/schedule/now"},
		{http.MethodPut, "/schedule/days"},
		{http.MethodGet, "/admin/schedule/refresh"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s status = %d, want 405", tt.method, tt.path, rec.Code)
		}
	}
}

func TestRefresh(t *testing.T) {
	source := &stubSource{entries: sampleEntries()}
	mux := newMux(t, source)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/schedule/refresh", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	source.err = errors.New("store down")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/schedule/refresh", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	source.err = service.ErrInvalidInput
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/schedule/refresh", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestNowAfterFailedFetchIsEmpty(t *testing.T) {
	mux := newMux(t, &stubSource{err: errors.New("store down")})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule/now", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var board domain.Board
	if err := json.NewDecoder(rec.Body).Decode(&board); err != nil {
		t.Fatalf("decode board: %v", err)
	}
	if board.CurrentClass != nil || board.NextClass != nil || len(board.Today) != 0 {
		t.Fatalf("board = %+v, want empty", board)
	}
}

func TestHealth(t *testing.T) {
	mux := newMux(t, &stubSource{})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}
