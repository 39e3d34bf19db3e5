package store

import (
	"regexp"
	"time"
)

// Record is one row from the record store: the store's opaque internal
// identifier plus the raw attribute bag. Typed accessors keep the untyped
// map handling in one place; entity decoding happens once at the store
// boundary, not at every use site.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Attachment is one element of an attachment field.
type Attachment struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

var recordIDPattern = regexp.MustCompile(`^rec[a-zA-Z0-9]{14}$`)

// IsRecordID reports whether s looks like one of the store's internal
// record identifiers. Relationship fields must always hold these ids,
// never external codes.
func IsRecordID(s string) bool {
	return recordIDPattern.MatchString(s)
}

func (r Record) String(key string) string {
	if v, ok := r.Fields[key].(string); ok {
		return v
	}
	return ""
}

func (r Record) Float(key string) float64 {
	switch v := r.Fields[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func (r Record) Int(key string) int {
	return int(r.Float(key))
}

// Bool decodes the store's checkbox encoding: either a real boolean or
// the legacy "checked" / empty string pair.
func (r Record) Bool(key string) bool {
	switch v := r.Fields[key].(type) {
	case bool:
		return v
	case string:
		return v == "checked"
	}
	return false
}

// Strings decodes a link/array field into its string elements.
func (r Record) Strings(key string) []string {
	switch v := r.Fields[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, el := range v {
			if s, ok := el.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// FirstLink returns the first id of a link field, or "" when unset.
func (r Record) FirstLink(key string) string {
	links := r.Strings(key)
	if len(links) == 0 {
		return ""
	}
	return links[0]
}

// Time parses a date field, accepting RFC3339 timestamps and plain dates.
func (r Record) Time(key string) (time.Time, bool) {
	s := r.String(key)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Attachments decodes an attachment field ([]{id, url, filename}).
func (r Record) Attachments(key string) []Attachment {
	items, ok := r.Fields[key].([]any)
	if !ok {
		return nil
	}

	out := make([]Attachment, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		att := Attachment{}
		if s, ok := m["id"].(string); ok {
			att.ID = s
		}
		if s, ok := m["url"].(string); ok {
			att.URL = s
		}
		if s, ok := m["filename"].(string); ok {
			att.Filename = s
		}
		out = append(out, att)
	}
	return out
}
