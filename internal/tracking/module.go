// Package tracking provides the behavioral event ingestion bounded context.
package tracking

import (
	"leadgen_backend/internal/events"
	apphttp "leadgen_backend/internal/http"
	"leadgen_backend/internal/tracking/handler"
	"leadgen_backend/internal/tracking/ports"
	"leadgen_backend/internal/tracking/repository"
	"leadgen_backend/internal/tracking/service"
	"leadgen_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the tracking bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the tracking module. The scorer is the
// leads context's scoring service behind an adapter.
func NewModule(pool *pgxpool.Pool, scorer ports.LeadScorer, eventBus events.Bus, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, scorer, eventBus)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "tracking"
}

// RegisterRoutes mounts the tracking endpoint on the public API group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
