package app

// M is a map[string]any with some extra methods, used as template data.
type M map[string]any

// Has returns true if m has a value for key.
func (m M) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// GetString returns the value of key as a string, or ""
func (m M) GetString(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
