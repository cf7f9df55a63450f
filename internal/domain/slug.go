package domain

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`[\s\v\x{85}\x{feff}\p{Z}]+`)
	nonSlugChar   = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRun     = regexp.MustCompile(`-+`)
	slugContent   = regexp.MustCompile(`[a-z0-9]`)
)

// Slugify turns free text into the canonical area key: lower-case, whitespace runs
// become one hyphen, everything outside [a-z0-9-] is dropped and hyphen runs collapse.
// It never fails; an empty result means the text has no usable key, which is also
// what a result made of hyphens alone collapses to.
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = nonSlugChar.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	if !slugContent.MatchString(s) {
		return ""
	}
	return s
}
