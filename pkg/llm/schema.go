package llm

// Property is a single string field of an object schema.
type Property struct {
	Name        string
	Description string
}

// Schema describes a flat JSON object whose properties are all required strings.
// It is the only output shape the service asks models for.
type Schema struct {
	Title       string
	Description string
	Properties  []Property
}

// Required lists property names in declaration order.
func (s Schema) Required() []string {
	out := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		out = append(out, p.Name)
	}
	return out
}

// JSONSchema renders s as a JSON Schema document.
func (s Schema) JSONSchema() map[string]any {
	props := make(map[string]any, len(s.Properties))
	for _, p := range s.Properties {
		prop := map[string]any{"type": "string", "title": p.Name}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		props[p.Name] = prop
	}
	out := map[string]any{
		"type":       "object",
		"properties": props,
		"required":   s.Required(),
	}
	if s.Title != "" {
		out["title"] = s.Title
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	return out
}
