package handlers

import (
	"errors"
	"net/http"

	"service-schedule/internal/service"
)

type AdminHandler struct {
	service *service.ScheduleService
}

func NewAdminHandler(svc *service.ScheduleService) *AdminHandler {
	return &AdminHandler{service: svc}
}

func (h *AdminHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/admin/schedule/refresh", h.handleRefresh)
}

func (h *AdminHandler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := h.service.Refresh(r.Context()); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			writeError(w, http.StatusInternalServerError)
		default:
			writeError(w, http.StatusBadGateway)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
