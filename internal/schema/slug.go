package schema

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugInvalid    = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	slugDashes     = regexp.MustCompile(`--+`)
)

// Slugify derives a URL-safe identifier from free text: Unicode is decomposed
// (NFKD) so accents reduce to their base letter, the text is lower-cased and
// trimmed, whitespace runs become single hyphens, anything outside
// [A-Za-z0-9_-] is stripped, underscores become hyphens, repeated hyphens
// collapse and leading or trailing hyphens are removed.
//
//	Slugify("Ferretería Los Amigos!") == "ferreteria-los-amigos"
func Slugify(text string) string {
	s := norm.NFKD.String(text)
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "_", "-")
	s = slugDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// DocumentSlug builds the final unique slug for a stored document:
// Slugify(title) plus the store-assigned id as uniqueness suffix.
// An all-symbol or empty title yields the bare id, never a leading hyphen.
func DocumentSlug(title, id string) string {
	base := Slugify(title)
	if base == "" {
		return id
	}
	return base + "-" + id
}
