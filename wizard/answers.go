package wizard

import (
	"fmt"
	"strings"
)

// Answers holds the values a shopper has entered so far, keyed by field.
// Values accumulate monotonically as the shopper progresses; navigating
// back never clears them. Single-select fields overwrite on re-selection.
type Answers map[string]any

// String returns the answer for key as a string, or "" if unset or not a string
func (a Answers) String(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

// Int64 returns the answer for key as an int64. JSON decoding delivers
// numbers as float64, so both are accepted.
func (a Answers) Int64(key string) int64 {
	switch v := a[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// Filled reports whether the answer for key is present and non-empty.
// Strings must be non-blank, lists must have at least one entry.
func (a Answers) Filled(key string) bool {
	v, ok := a[key]
	if !ok || v == nil {
		return false
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val) != ""
	case []any:
		return len(val) > 0
	case []map[string]any:
		return len(val) > 0
	}
	return true
}

// Entries returns the list entries stored under key. JSON decoding delivers
// list entries as []any of map[string]any, which is normalized here.
func (a Answers) Entries(key string) []map[string]any {
	switch v := a[key].(type) {
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, e := range v {
			if m, ok := e.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

// AppendEntry appends an entry to the list field under key, up to max
// entries (0 means unlimited)
func (a Answers) AppendEntry(key string, entry map[string]any, max int) error {
	entries := a.Entries(key)
	if max > 0 && len(entries) >= max {
		return fmt.Errorf("list %s is full (max %d entries)", key, max)
	}
	a[key] = append(entries, entry)
	return nil
}

// RemoveEntry removes the entry at index i from the list field under key.
// The last remaining entry cannot be removed.
func (a Answers) RemoveEntry(key string, i int) error {
	entries := a.Entries(key)
	if i < 0 || i >= len(entries) {
		return fmt.Errorf("list %s has no entry at index %d", key, i)
	}
	if len(entries) <= 1 {
		return fmt.Errorf("list %s must keep at least one entry", key)
	}
	a[key] = append(entries[:i], entries[i+1:]...)
	return nil
}

// UpdateEntry sets a single field of the entry at index i in the list
// field under key
func (a Answers) UpdateEntry(key string, i int, field string, value any) error {
	entries := a.Entries(key)
	if i < 0 || i >= len(entries) {
		return fmt.Errorf("list %s has no entry at index %d", key, i)
	}
	entries[i][field] = value
	a[key] = entries
	return nil
}

// Clone returns a copy of the answers map. List entries are copied as well,
// so a submitter holding the snapshot cannot edit live wizard state.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		switch entries := v.(type) {
		case []map[string]any:
			copied := make([]map[string]any, len(entries))
			for i, e := range entries {
				copied[i] = cloneEntry(e)
			}
			out[k] = copied
		case []any:
			copied := make([]any, len(entries))
			for i, e := range entries {
				if m, ok := e.(map[string]any); ok {
					copied[i] = cloneEntry(m)
				} else {
					copied[i] = e
				}
			}
			out[k] = copied
		default:
			out[k] = v
		}
	}
	return out
}

func cloneEntry(e map[string]any) map[string]any {
	m := make(map[string]any, len(e))
	for field, value := range e {
		m[field] = value
	}
	return m
}
