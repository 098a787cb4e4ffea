package services

import (
	"context"
	"strings"
	"time"

	"scambait-lab/internal/config"
	"scambait-lab/internal/domain/models"
	"scambait-lab/pkg/logger"
)

// ReportSink receives a finalized scam report. Delivery is fire-and-forget
// from the engine's perspective.
type ReportSink interface {
	Report(report *models.ScamReport)
}

// AgentNotes is the fixed human-readable note attached to every report.
const AgentNotes = "Honeypot agent engaged scammer with scripted non-revealing replies; intelligence extracted from conversation."

// Engine orchestrates the per-message session state machine: it applies the
// classifier and extractor to the session under its lock, composes the
// scripted reply, and triggers at-most-once reporting.
type Engine struct {
	store      *SessionStore
	classifier *Classifier
	extractor  *Extractor
	reporter   ReportSink
	cfg        config.HoneypotConfig
	logger     *logger.Logger
}

// NewEngine creates the session state machine.
func NewEngine(store *SessionStore, classifier *Classifier, extractor *Extractor, reporter ReportSink, cfg config.HoneypotConfig, log *logger.Logger) *Engine {
	return &Engine{
		store:      store,
		classifier: classifier,
		extractor:  extractor,
		reporter:   reporter,
		cfg:        cfg,
		logger:     log.WithComponent("engine"),
	}
}

// HandleMessage processes one inbound message for a session and returns the
// scripted reply. The whole read-modify-write runs under the session lock,
// so concurrent messages for the same session id serialize and the reporting
// trigger fires at most once.
func (e *Engine) HandleMessage(ctx context.Context, sessionID, text string) string {
	sess := e.store.GetOrCreate(sessionID)

	sess.Lock()
	defer sess.Unlock()

	sess.Messages = append(sess.Messages, text)
	sess.LastSeenAt = time.Now()

	// Keyword scanning stops once a session is flagged; extraction never does.
	if !sess.ScamDetected {
		if matched := e.classifier.Classify(strings.ToLower(text)); len(matched) > 0 {
			sess.ScamDetected = true
			sess.Intelligence.SuspiciousKeywords = append(sess.Intelligence.SuspiciousKeywords, matched...)
			e.logger.Info().
				Str("session_id", sessionID).
				Strs("keywords", matched).
				Msg("scam detected")
		}
	}

	extracted := e.extractor.Extract(text)
	sess.Intelligence.UPIIDs = append(sess.Intelligence.UPIIDs, extracted.UPIIDs...)
	sess.Intelligence.PhishingLinks = append(sess.Intelligence.PhishingLinks, extracted.PhishingLinks...)
	sess.Intelligence.PhoneNumbers = append(sess.Intelligence.PhoneNumbers, extracted.PhoneNumbers...)

	reply := e.cfg.DefaultReply
	if sess.ScamDetected {
		reply = e.cfg.ScamReply
	}

	if sess.ScamDetected && !sess.FinalReported && len(sess.Messages) >= e.cfg.ReportThreshold {
		// Flag before dispatch: a slow or failed delivery must never cause
		// the trigger to re-fire.
		sess.FinalReported = true

		report := &models.ScamReport{
			SessionID:              sess.ID,
			ScamDetected:           true,
			TotalMessagesExchanged: len(sess.Messages),
			ExtractedIntelligence:  sess.Intelligence.Snapshot(),
			AgentNotes:             AgentNotes,
		}

		e.logger.Info().
			Str("session_id", sessionID).
			Int("messages", report.TotalMessagesExchanged).
			Msg("reporting threshold reached, dispatching intelligence")

		if e.reporter != nil {
			go e.reporter.Report(report)
		}
	}

	return reply
}
