package handlers

import (
	"scambait-lab/internal/domain/services"
	"scambait-lab/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health   *HealthHandler
	Honeypot *HoneypotHandler
	Stats    *StatsHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Engine     *services.Engine
	Store      *services.SessionStore
	Classifier *services.Classifier
	Extractor  *services.Extractor
	Version    string
	Logger     *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(deps.Version, deps.Logger),
		Honeypot: NewHoneypotHandler(deps.Engine, deps.Logger),
		Stats:    NewStatsHandler(deps.Store, deps.Classifier, deps.Extractor, deps.Logger),
	}
}
