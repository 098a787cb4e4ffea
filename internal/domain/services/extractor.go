package services

import (
	"regexp"

	"scambait-lab/internal/domain/models"
)

// Extractor pulls scam-relevant artifacts out of raw message text using
// regex patterns. It is stateless: the same input always yields the same
// matches, and any string input is accepted.
type Extractor struct {
	upiPattern   *regexp.Regexp
	urlPattern   *regexp.Regexp
	phonePattern *regexp.Regexp
}

// NewExtractor creates a new extractor with compiled patterns.
func NewExtractor() *Extractor {
	return &Extractor{
		// UPI handle: word chars, dots or hyphens followed by @upi,
		// bounded on both sides
		upiPattern: regexp.MustCompile(`\b[\w.-]+@upi\b`),
		// http(s) URL, greedy to the next whitespace
		urlPattern: regexp.MustCompile(`https?://\S+`),
		// Indian mobile number: +91 followed by exactly 10 digits
		phonePattern: regexp.MustCompile(`\+91\d{10}`),
	}
}

// Extract runs all patterns against the original-case message text.
// Extraction is always performed on the text as written; lowercasing is
// the classifier's concern, not the extractor's.
func (e *Extractor) Extract(text string) models.ExtractedIntelligence {
	return models.ExtractedIntelligence{
		UPIIDs:        findAll(e.upiPattern, text),
		PhishingLinks: findAll(e.urlPattern, text),
		PhoneNumbers:  findAll(e.phonePattern, text),
	}
}

// Patterns returns the active pattern strings for the patterns endpoint.
func (e *Extractor) Patterns() map[string]string {
	return map[string]string{
		"upi_id":        e.upiPattern.String(),
		"phishing_link": e.urlPattern.String(),
		"phone_number":  e.phonePattern.String(),
	}
}

func findAll(pattern *regexp.Regexp, text string) []string {
	matches := pattern.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
