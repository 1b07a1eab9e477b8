package triage

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

var knownDepartments = func() map[string]struct{} {
	out := make(map[string]struct{}, len(Departments))
	for _, d := range Departments {
		out[normalizeName(d)] = struct{}{}
	}
	return out
}()

// IsKnownDepartment reports whether name matches one of Departments, ignoring
// case and punctuation. Recommendations are never rejected on this basis.
func IsKnownDepartment(name string) bool {
	_, ok := knownDepartments[normalizeName(name)]
	return ok
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
