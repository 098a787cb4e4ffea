package handlers

import (
	"encoding/json"
	"net/http"

	"scambait-lab/internal/domain/services"
	"scambait-lab/pkg/logger"
)

// StatsHandler exposes store counters and the active detection ruleset
type StatsHandler struct {
	store      *services.SessionStore
	classifier *services.Classifier
	extractor  *services.Extractor
	logger     *logger.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(store *services.SessionStore, classifier *services.Classifier, extractor *services.Extractor, log *logger.Logger) *StatsHandler {
	return &StatsHandler{
		store:      store,
		classifier: classifier,
		extractor:  extractor,
		logger:     log.WithComponent("stats"),
	}
}

// Get handles GET /api/v1/stats - session and intelligence counters
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.Stats())
}

// GetPatterns handles GET /api/v1/patterns - the active keyword list and
// extraction patterns, useful when tuning simulated conversations
func (h *StatsHandler) GetPatterns(w http.ResponseWriter, r *http.Request) {
	response := struct {
		Keywords []string          `json:"keywords"`
		Patterns map[string]string `json:"patterns"`
	}{
		Keywords: h.classifier.Keywords(),
		Patterns: h.extractor.Patterns(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
