package schema

// strictify rewrites a decoded schema document in place so that every
// object subschema declaring properties also rejects undeclared ones.
// The permissive and strict passes are compiled from the same source,
// so the two can never drift apart.
func strictify(v any) {
	switch n := v.(type) {
	case map[string]any:
		if _, ok := n["properties"]; ok {
			if _, declared := n["additionalProperties"]; !declared {
				n["additionalProperties"] = false
			}
		}
		for _, child := range n {
			strictify(child)
		}
	case []any:
		for _, child := range n {
			strictify(child)
		}
	}
}
