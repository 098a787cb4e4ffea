package handlers

import (
	"encoding/json"
	"net/http"

	"scambait-lab/internal/domain/models"
	"scambait-lab/internal/domain/services"
	"scambait-lab/pkg/logger"
)

// HoneypotHandler handles the inbound scam-conversation endpoint
type HoneypotHandler struct {
	engine *services.Engine
	logger *logger.Logger
}

// NewHoneypotHandler creates a new honeypot handler
func NewHoneypotHandler(engine *services.Engine, log *logger.Logger) *HoneypotHandler {
	return &HoneypotHandler{
		engine: engine,
		logger: log.WithComponent("honeypot-handler"),
	}
}

// Handle handles POST /honeypot - processes one simulated scam message and
// returns the scripted reply. The reply never waits on reporting.
func (h *HoneypotHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.HoneypotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	if req.SessionID == "" {
		http.Error(w, `{"error":"sessionId is required"}`, http.StatusBadRequest)
		return
	}
	if req.Message.Text == "" {
		http.Error(w, `{"error":"message.text is required"}`, http.StatusBadRequest)
		return
	}

	reply := h.engine.HandleMessage(r.Context(), req.SessionID, req.Message.Text)

	h.logger.Debug().
		Str("session_id", req.SessionID).
		Str("sender", req.Message.Sender).
		Msg("honeypot message processed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.HoneypotResponse{
		Status: "success",
		Reply:  reply,
	})
}
