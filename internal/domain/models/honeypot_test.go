package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampAcceptsStringAndInteger(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Timestamp
	}{
		{"string", `{"sender":"scammer","text":"hi","timestamp":"2024-01-01T00:00:00Z"}`, "2024-01-01T00:00:00Z"},
		{"integer", `{"sender":"scammer","text":"hi","timestamp":1704067200}`, "1704067200"},
		{"null", `{"sender":"scammer","text":"hi","timestamp":null}`, ""},
		{"missing", `{"sender":"scammer","text":"hi"}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var msg HoneypotMessage
			require.NoError(t, json.Unmarshal([]byte(tc.body), &msg))
			assert.Equal(t, tc.want, msg.Timestamp)
		})
	}
}

func TestTimestampRejectsObjects(t *testing.T) {
	var msg HoneypotMessage
	err := json.Unmarshal([]byte(`{"text":"hi","timestamp":{"bad":true}}`), &msg)
	assert.Error(t, err)
}

func TestHoneypotRequestDecoding(t *testing.T) {
	body := `{
		"sessionId": "abc-123",
		"message": {"sender": "scammer", "text": "verify your account", "timestamp": "now"},
		"conversationHistory": [{"sender": "user", "text": "hello", "timestamp": 12345}],
		"metadata": {"channel": "SMS", "language": "English", "locale": "IN"}
	}`

	var req HoneypotRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, "abc-123", req.SessionID)
	assert.Equal(t, "verify your account", req.Message.Text)
	assert.Len(t, req.ConversationHistory, 1)
	assert.Equal(t, Timestamp("12345"), req.ConversationHistory[0].Timestamp)
	require.NotNil(t, req.Metadata)
	assert.Equal(t, "SMS", req.Metadata.Channel)
}

func TestIntelligenceSnapshotIsDeepCopy(t *testing.T) {
	intel := NewIntelligence()
	intel.UPIIDs = append(intel.UPIIDs, "a@upi")

	snap := intel.Snapshot()
	intel.UPIIDs = append(intel.UPIIDs, "b@upi")

	assert.Equal(t, []string{"a@upi"}, snap.UPIIDs)
}

func TestIntelligenceMarshalsArraysNotNull(t *testing.T) {
	out, err := json.Marshal(NewIntelligence())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"bankAccounts": [],
		"upiIds": [],
		"phishingLinks": [],
		"phoneNumbers": [],
		"suspiciousKeywords": []
	}`, string(out))
}
