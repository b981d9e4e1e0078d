// Package leads provides the lead capture bounded context module.
// It owns the lead and draft lifecycle and the behavioral scoring engine.
package leads

import (
	"leadgen_backend/internal/events"
	apphttp "leadgen_backend/internal/http"
	"leadgen_backend/internal/leads/handler"
	"leadgen_backend/internal/leads/repository"
	"leadgen_backend/internal/leads/scoring"
	"leadgen_backend/internal/leads/service"
	"leadgen_backend/platform/config"
	"leadgen_backend/platform/logger"
	"leadgen_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	scoring *scoring.Service
	repo    repository.Repository
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, cfg config.ScoringConfig, log *logger.Logger) (*Module, error) {
	repo := repository.New(pool)

	rules, err := scoring.LoadRules(cfg.GetScoringRulesPath())
	if err != nil {
		return nil, err
	}
	scoringSvc := scoring.New(scoring.NewCalculator(rules), repo, eventBus, log)

	svc := service.New(repo, eventBus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		scoring: scoringSvc,
		repo:    repo,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// ScoringService returns the lead scoring service for external use.
func (m *Module) ScoringService() *scoring.Service {
	return m.scoring
}

// Repository returns the leads repository for external use.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts the public lead routes and the admin lead list.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterPublicRoutes(ctx.V1.Group("/leads"))
	m.handler.RegisterAdminRoutes(ctx.Admin)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
