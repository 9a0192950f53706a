package sync

import (
	"regexp"
	"strings"
)

// Set codes double as dataset file names and are capped at 10 characters.
const maxCodeLen = 10

var reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeCode reduces a set code or name to the identifier form used for
// dataset file names: lowercase, alphanumerics only, at most 10 characters.
func NormalizeCode(s string) string {
	s = reNonAlnum.ReplaceAllString(strings.ToLower(s), "")
	return truncate(s, maxCodeLen)
}

// SimplifyName is the looser fallback form: lowercased with spaces and
// hyphens removed, everything else kept.
func SimplifyName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return truncate(s, maxCodeLen)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
