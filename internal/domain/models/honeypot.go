package models

import (
	"encoding/json"
	"strconv"
)

// Timestamp accepts either a JSON string or a JSON integer, since honeypot
// clients are not consistent about which they send. The value is carried
// verbatim and never interpreted.
type Timestamp string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Timestamp(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Timestamp(n.String())
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(t))), nil
}

// HoneypotMessage is a single inbound conversation message.
type HoneypotMessage struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp Timestamp `json:"timestamp"`
}

// HoneypotMetadata carries optional client hints. Accepted but not consumed
// by the detection pipeline.
type HoneypotMetadata struct {
	Channel  string `json:"channel,omitempty"`
	Language string `json:"language,omitempty"`
	Locale   string `json:"locale,omitempty"`
}

// HoneypotRequest is the inbound body for POST /honeypot.
// ConversationHistory is accepted for API compatibility and ignored; the
// session store is the source of truth for conversation state.
type HoneypotRequest struct {
	SessionID           string            `json:"sessionId"`
	Message             HoneypotMessage   `json:"message"`
	ConversationHistory []HoneypotMessage `json:"conversationHistory,omitempty"`
	Metadata            *HoneypotMetadata `json:"metadata,omitempty"`
}

// HoneypotResponse is the reply envelope returned to the caller.
type HoneypotResponse struct {
	Status string `json:"status"`
	Reply  string `json:"reply"`
}
