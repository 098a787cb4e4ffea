package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scambait-lab/internal/config"
)

func TestClassifierMatchesInKeywordOrder(t *testing.T) {
	c := NewClassifier(config.DefaultKeywords)

	// "bank" matches inside "fake.bank"; order follows the keyword list,
	// not appearance order in the text
	lowered := "your account is blocked, verify at https://fake.bank/verify or pay via user123@upi, call +919876543210"
	got := c.Classify(lowered)

	assert.Equal(t, []string{"blocked", "verify", "account", "upi", "bank"}, got)
}

func TestClassifierSubstringSemantics(t *testing.T) {
	c := NewClassifier(config.DefaultKeywords)

	// not word-bounded: "clicking" contains "click"
	assert.Equal(t, []string{"click"}, c.Classify("keep clicking here"))
	assert.Equal(t, []string{"link"}, c.Classify("blinking lights")) // "blinking" contains "link"
}

func TestClassifierNoMatch(t *testing.T) {
	c := NewClassifier(config.DefaultKeywords)

	assert.Empty(t, c.Classify("hello how are you"))
	assert.Empty(t, c.Classify(""))
}

func TestClassifierKeywordsCopy(t *testing.T) {
	c := NewClassifier([]string{"blocked", "verify"})

	kws := c.Keywords()
	kws[0] = "mutated"
	assert.Equal(t, []string{"blocked", "verify"}, c.Keywords())
}
