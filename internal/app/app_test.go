package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"service-schedule/internal/domain"
	"service-schedule/internal/logger"
	"service-schedule/internal/schedule"
	"service-schedule/internal/service"
)

type staticSource []domain.ScheduleEntry

func (s staticSource) ListEntries(ctx context.Context) ([]domain.ScheduleEntry, error) {
	return s, nil
}

func TestAppServesResolvedBoard(t *testing.T) {
	source := staticSource{
		{ID: 1, Day: "Senin", CourseName: "Basis Data", StartTime: "08:00:00", EndTime: "09:40:00"},
		{ID: 2, Day: "Senin", CourseName: "Jaringan", StartTime: "13:00:00", EndTime: "14:40:00"},
	}
	application := New(source, service.Options{Locale: schedule.Indonesian, Location: time.UTC}, logger.NopLogger{})
	if err := application.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	// Monday 4 March 2024, 10:30 UTC.
	application.Tick(time.Date(2024, time.March, 4, 10, 30, 0, 0, time.UTC))

	server := httptest.NewServer(application.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/schedule/now")
	if err != nil {
		t.Fatalf("GET /schedule/now: %v", err)
	}
	defer resp.Body.Close()

	var board domain.Board
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if board.Day != "Senin" || board.CurrentClass != nil {
		t.Fatalf("board = %+v", board)
	}
	if board.NextClass == nil || board.NextClass.ID != 2 || board.Countdown != "2H 30M" {
		t.Fatalf("next = %+v countdown %q", board.NextClass, board.Countdown)
	}
}
