package services

import "strings"

// Classifier flags scam conversations with a fixed keyword ruleset.
// A keyword matches anywhere as a substring ("clicking" matches "click"),
// which is deliberate: scammers pad trigger words into larger phrases.
type Classifier struct {
	keywords []string
}

// NewClassifier creates a classifier over the given keyword list. Matches
// are reported in list order regardless of where they appear in the text.
func NewClassifier(keywords []string) *Classifier {
	return &Classifier{keywords: keywords}
}

// Classify returns the keywords found in the lowercased text. The caller is
// expected to lowercase the message once and to stop classifying a session
// after its first positive result.
func (c *Classifier) Classify(lowered string) []string {
	var matched []string
	for _, kw := range c.keywords {
		if strings.Contains(lowered, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// Keywords returns the active keyword list.
func (c *Classifier) Keywords() []string {
	return append([]string{}, c.keywords...)
}
