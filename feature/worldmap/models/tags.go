package models

import (
	"encoding/json"
	"strings"
)

// DedupeTypes removes duplicate relationship-type tags case-insensitively,
// preserving first-occurrence order and casing. Blank tags are dropped.
func DedupeTypes(types []string) []string {
	seen := make(map[string]struct{}, len(types))
	out := make([]string, 0, len(types))
	for _, t := range types {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SameTypeSet reports whether two tag lists contain the same tags
// case-insensitively, ignoring order.
func SameTypeSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[strings.ToLower(t)] = struct{}{}
	}
	for _, t := range b {
		if _, ok := set[strings.ToLower(t)]; !ok {
			return false
		}
	}
	return true
}

// EncodeTypes serializes a tag list to its stored JSON-array form.
func EncodeTypes(types []string) string {
	if len(types) == 0 {
		return "[]"
	}
	data, err := json.Marshal(types)
	if err != nil {
		// Marshal of []string cannot fail; guard anyway.
		return "[]"
	}
	return string(data)
}

// DecodeTypes parses the stored form of a tag list. Legacy rows hold a
// plain string rather than a JSON array; those (and any rows that fail to
// parse) degrade to a single-element list of the trimmed raw value.
func DecodeTypes(stored string) []string {
	trimmed := strings.TrimSpace(stored)
	if trimmed == "" {
		return []string{}
	}
	if !strings.HasPrefix(trimmed, "[") {
		return []string{trimmed}
	}
	var types []string
	if err := json.Unmarshal([]byte(trimmed), &types); err != nil {
		return []string{trimmed}
	}
	return DedupeTypes(types)
}
