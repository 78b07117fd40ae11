package handlers

import (
	"encoding/json"
	"net/http"

	"service-schedule/internal/service"
)

type ScheduleHandler struct {
	service *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

func (h *ScheduleHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/schedule", h.handleList)
	mux.HandleFunc("/schedule/now", h.handleNow)
	mux.HandleFunc("/schedule/days", h.handleDays)
	mux.HandleFunc("/healthz", h.handleHealth)
}

type listResponse struct {
	Day     string `json:"day"`
	Entries any    `json:"entries"`
}

func (h *ScheduleHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	day := r.URL.Query().Get("day")
	writeJSON(w, http.StatusOK, listResponse{
		Day:     day,
		Entries: h.service.List(day),
	})
}

func (h *ScheduleHandler) handleNow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Board())
}

type daysResponse struct {
	Days []string `json:"days"`
}

func (h *ScheduleHandler) handleDays(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, daysResponse{Days: h.service.Weekdays()})
}

func (h *ScheduleHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte("{}"))
}
