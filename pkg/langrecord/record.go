package langrecord

import (
	"slices"
	"strings"
)

// Record is a single language variant of a text value.
type Record struct {
	Key   string `json:"k"`
	Value string `json:"v"`
}

// IsBlank reports whether the record value is empty or whitespace only.
func (r Record) IsBlank() bool {
	return strings.TrimSpace(r.Value) == ""
}

// Records is an ordered record-set.
type Records []Record

// Lookup returns the first record with the given key.
func (r Records) Lookup(key string) (Record, bool) {
	for _, rec := range r {
		if rec.Key == key {
			return rec, true
		}
	}
	return Record{}, false
}

// Languages returns the record keys in order.
func (r Records) Languages() []string {
	keys := make([]string, 0, len(r))
	for _, rec := range r {
		keys = append(keys, rec.Key)
	}
	return keys
}

// Map converts the record-set into a language-to-value map.
// Later records win when keys repeat.
func (r Records) Map() map[string]string {
	m := make(map[string]string, len(r))
	for _, rec := range r {
		m[rec.Key] = rec.Value
	}
	return m
}

// With returns a copy of the record-set where every record with the given key
// carries value. The record is appended when the key is absent.
func (r Records) With(key, value string) Records {
	out := slices.Clone(r)
	found := false
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			found = true
		}
	}
	if !found {
		out = append(out, Record{Key: key, Value: value})
	}
	return out
}

// FromMap builds a record-set from a language-to-value map.
// Keys present in order come first, in that order; the remaining keys
// are appended alphabetically so the result is deterministic.
func FromMap(values map[string]string, order []string) Records {
	records := make(Records, 0, len(values))
	seen := make(map[string]struct{}, len(values))

	for _, key := range order {
		if _, done := seen[key]; done {
			continue
		}
		if value, ok := values[key]; ok {
			records = append(records, Record{Key: key, Value: value})
			seen[key] = struct{}{}
		}
	}

	rest := make([]string, 0, len(values)-len(seen))
	for key := range values {
		if _, done := seen[key]; !done {
			rest = append(rest, key)
		}
	}
	slices.Sort(rest)

	for _, key := range rest {
		records = append(records, Record{Key: key, Value: values[key]})
	}

	return records
}
