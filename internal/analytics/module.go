// Package analytics provides the read-only admin aggregation module.
package analytics

import (
	"leadgen_backend/internal/analytics/handler"
	"leadgen_backend/internal/analytics/repository"
	apphttp "leadgen_backend/internal/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the analytics bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the analytics module.
func NewModule(pool *pgxpool.Pool) *Module {
	return &Module{
		handler: handler.New(repository.New(pool)),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "analytics"
}

// RegisterRoutes mounts the analytics endpoints on the admin group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Admin)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
