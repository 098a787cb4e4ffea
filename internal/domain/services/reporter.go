package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"scambait-lab/internal/config"
	"scambait-lab/internal/domain/models"
	"scambait-lab/pkg/logger"
)

// Reporter delivers finalized scam reports to the external intelligence
// collector. Delivery is best-effort: failures are logged and swallowed,
// there are no retries, and the outcome never reaches the reply path.
type Reporter struct {
	url        string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewReporter creates a reporter with a bounded delivery timeout.
func NewReporter(cfg config.ReporterConfig, log *logger.Logger) *Reporter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Reporter{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log.WithComponent("reporter"),
	}
}

// Report posts the payload to the collector. Callers dispatch this on its
// own goroutine; it blocks only for the client timeout at worst.
func (r *Reporter) Report(report *models.ScamReport) {
	body, err := json.Marshal(report)
	if err != nil {
		r.logger.Error().Err(err).Str("session_id", report.SessionID).Msg("failed to marshal scam report")
		return
	}

	req, err := http.NewRequest(http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		r.logger.Error().Err(err).Str("session_id", report.SessionID).Msg("failed to create report request")
		return
	}

	reportID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ScamBait-Reporter/1.0")
	req.Header.Set("X-Report-ID", reportID)
	req.Header.Set("X-Report-Timestamp", fmt.Sprintf("%d", time.Now().Unix()))

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("session_id", report.SessionID).
			Str("url", r.url).
			Msg("scam report delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		r.logger.Info().
			Str("session_id", report.SessionID).
			Str("report_id", reportID).
			Int("status", resp.StatusCode).
			Dur("duration", time.Since(start)).
			Msg("scam report delivered")
		return
	}

	r.logger.Warn().
		Str("session_id", report.SessionID).
		Str("report_id", reportID).
		Int("status", resp.StatusCode).
		Msg("collector rejected scam report")
}
