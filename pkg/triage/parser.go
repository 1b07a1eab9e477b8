package triage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ParseRecommendation extracts the JSON document from a model reply and
// validates it against OutputSchema. Failures wrap ErrOutputParse or
// ErrOutputValidation.
func ParseRecommendation(raw string) (DepartmentRecommendation, error) {
	doc, ok := extractJSON(raw)
	if !ok {
		return DepartmentRecommendation{}, fmt.Errorf("%w: invalid json output: %q", ErrOutputParse, truncate(raw, 200))
	}
	parsed := gjson.Parse(doc)
	if !parsed.IsObject() {
		return DepartmentRecommendation{}, fmt.Errorf("%w: expected a JSON object, got %s", ErrOutputValidation, parsed.Type)
	}
	field := parsed.Get(fieldRecommendedDepartment)
	if !field.Exists() {
		return DepartmentRecommendation{}, fmt.Errorf("%w: field %q required", ErrOutputValidation, fieldRecommendedDepartment)
	}
	if field.Type != gjson.String {
		return DepartmentRecommendation{}, fmt.Errorf("%w: field %q must be a string, got %s", ErrOutputValidation, fieldRecommendedDepartment, field.Type)
	}
	return DepartmentRecommendation{RecommendedDepartment: field.String()}, nil
}

func extractJSON(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		text = m[1]
	}
	if gjson.Valid(text) {
		return text, true
	}
	// models sometimes wrap the object in prose
	if i := strings.Index(text, "{"); i >= 0 {
		if j := strings.LastIndex(text, "}"); j > i && gjson.Valid(text[i:j+1]) {
			return text[i : j+1], true
		}
	}
	return "", false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
