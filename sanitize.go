package main

import (
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// strict drops every HTML element and entity-escapes what remains. Safe for
// concurrent use once built.
var strict = bluemonday.StrictPolicy()

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// cleanString neutralizes markup in client-supplied text before it is
// stored: trim, strip tags, escape HTML-significant characters. This protects
// the rendering side; the query layer is parameterized regardless.
func cleanString(s string) string {
	return strict.Sanitize(strings.TrimSpace(s))
}

func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// isValidDate accepts the empty string (no deadline) or a strict ISO
// YYYY-MM-DD date. The round-trip comparison rejects inputs the parser would
// normalize, like 2026-02-30.
func isValidDate(s string) bool {
	if s == "" {
		return true
	}
	d, err := time.Parse(time.DateOnly, s)
	return err == nil && d.Format(time.DateOnly) == s
}

func isValidColor(s string) bool {
	return colorPattern.MatchString(s)
}

func isValidLength(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max
}
