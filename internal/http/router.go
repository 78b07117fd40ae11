package http

import (
	"net/http"

	"service-schedule/internal/http/handlers"
)

type Router struct {
	mux *http.ServeMux
}

func NewRouter(scheduleHandler *handlers.ScheduleHandler, adminHandler *handlers.AdminHandler) *Router {
	mux := http.NewServeMux()
	scheduleHandler.Register(mux)
	adminHandler.Register(mux)

	return &Router{mux: mux}
}

func (r *Router) Handler() http.Handler {
	return r.mux
}
