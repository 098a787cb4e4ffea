package models

import (
	"sync"
	"time"
)

// Intelligence aggregates scam artifacts extracted from a conversation.
// Sequences are append-only and deliberately not deduplicated: every match
// is recorded, including repeats across messages.
type Intelligence struct {
	BankAccounts       []string `json:"bankAccounts"`
	UPIIDs             []string `json:"upiIds"`
	PhishingLinks      []string `json:"phishingLinks"`
	PhoneNumbers       []string `json:"phoneNumbers"`
	SuspiciousKeywords []string `json:"suspiciousKeywords"`
}

// NewIntelligence returns an empty aggregate with non-nil sequences so the
// JSON encoding is always arrays, never null.
func NewIntelligence() Intelligence {
	return Intelligence{
		BankAccounts:       []string{},
		UPIIDs:             []string{},
		PhishingLinks:      []string{},
		PhoneNumbers:       []string{},
		SuspiciousKeywords: []string{},
	}
}

// Snapshot returns a deep copy safe to hand to another goroutine.
func (i Intelligence) Snapshot() Intelligence {
	return Intelligence{
		BankAccounts:       append([]string{}, i.BankAccounts...),
		UPIIDs:             append([]string{}, i.UPIIDs...),
		PhishingLinks:      append([]string{}, i.PhishingLinks...),
		PhoneNumbers:       append([]string{}, i.PhoneNumbers...),
		SuspiciousKeywords: append([]string{}, i.SuspiciousKeywords...),
	}
}

// ExtractedIntelligence is the result of pattern extraction on a single message.
type ExtractedIntelligence struct {
	UPIIDs        []string `json:"upiIds"`
	PhishingLinks []string `json:"phishingLinks"`
	PhoneNumbers  []string `json:"phoneNumbers"`
}

// Session tracks one simulated scam conversation, keyed by an externally
// supplied identifier. ScamDetected and FinalReported are monotonic: once
// true they never revert. All mutation happens under the session lock.
type Session struct {
	mu sync.Mutex

	ID            string       `json:"id"`
	Messages      []string     `json:"messages"`
	ScamDetected  bool         `json:"scamDetected"`
	FinalReported bool         `json:"finalReported"`
	Intelligence  Intelligence `json:"intelligence"`
	CreatedAt     time.Time    `json:"createdAt"`
	LastSeenAt    time.Time    `json:"lastSeenAt"`
}

// Lock acquires the per-session mutex. Requests for the same session id
// serialize here; distinct sessions never contend.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-session mutex.
func (s *Session) Unlock() { s.mu.Unlock() }

// ScamReport is the payload delivered once per scam-confirmed session to the
// external intelligence collector.
type ScamReport struct {
	SessionID              string       `json:"sessionId"`
	ScamDetected           bool         `json:"scamDetected"`
	TotalMessagesExchanged int          `json:"totalMessagesExchanged"`
	ExtractedIntelligence  Intelligence `json:"extractedIntelligence"`
	AgentNotes             string       `json:"agentNotes"`
}
