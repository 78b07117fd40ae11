package app

import (
	"context"
	"net/http"
	"time"

	transport "service-schedule/internal/http"
	"service-schedule/internal/http/handlers"
	"service-schedule/internal/logger"
	"service-schedule/internal/service"
)

type App struct {
	handler         http.Handler
	scheduleService *service.ScheduleService
}

func New(source service.EntrySource, opts service.Options, log logger.Logger) *App {
	scheduleService := service.NewScheduleService(source, opts, log)

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	adminHandler := handlers.NewAdminHandler(scheduleService)
	router := transport.NewRouter(scheduleHandler, adminHandler)

	return &App{handler: router.Handler(), scheduleService: scheduleService}
}

func (a *App) Handler() http.Handler {
	return a.handler
}

func (a *App) Service() *service.ScheduleService {
	return a.scheduleService
}

func (a *App) Refresh(ctx context.Context) error {
	return a.scheduleService.Refresh(ctx)
}

func (a *App) Tick(now time.Time) {
	a.scheduleService.Tick(now)
}
