package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractorScamMessage(t *testing.T) {
	e := NewExtractor()

	text := "Your account is blocked, verify at https://fake.bank/verify or pay via user123@upi, call +919876543210"
	got := e.Extract(text)

	assert.Equal(t, []string{"user123@upi"}, got.UPIIDs)
	assert.Equal(t, []string{"https://fake.bank/verify"}, got.PhishingLinks)
	assert.Equal(t, []string{"+919876543210"}, got.PhoneNumbers)
}

func TestExtractorNoMatches(t *testing.T) {
	e := NewExtractor()

	for _, text := range []string{
		"hello how are you",
		"",
		"наберите нас срочно",
		"email me at someone@example.com",
		"+91 9876543210", // separator breaks the phone pattern
		strings.Repeat("a", 100000),
	} {
		got := e.Extract(text)
		assert.Empty(t, got.UPIIDs, "upi ids for %q", text)
		assert.Empty(t, got.PhishingLinks, "links for %q", text)
		assert.Empty(t, got.PhoneNumbers, "phones for %q", text)
		// empty means empty slice, not nil, so JSON stays an array
		assert.NotNil(t, got.UPIIDs)
		assert.NotNil(t, got.PhishingLinks)
		assert.NotNil(t, got.PhoneNumbers)
	}
}

func TestExtractorCasePreserved(t *testing.T) {
	e := NewExtractor()

	got := e.Extract("pay User-12.3@upi now via HTTPS link http://Evil.Example/Login")
	assert.Equal(t, []string{"User-12.3@upi"}, got.UPIIDs)
	assert.Equal(t, []string{"http://Evil.Example/Login"}, got.PhishingLinks)
}

func TestExtractorRepeatsNotDeduplicated(t *testing.T) {
	e := NewExtractor()

	got := e.Extract("user@upi and again user@upi")
	assert.Equal(t, []string{"user@upi", "user@upi"}, got.UPIIDs)
}

func TestExtractorIdempotent(t *testing.T) {
	e := NewExtractor()

	text := "visit https://phish.example/a and https://phish.example/b or call +911234567890"
	first := e.Extract(text)
	second := e.Extract(text)

	assert.Equal(t, first, second)
}
