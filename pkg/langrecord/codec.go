package langrecord

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Encode returns the wire form of the record-set.
// A nil or empty record-set encodes as an empty JSON array.
// Keys and values must be valid UTF-8: each invalid byte is encoded as
// U+FFFD, so such values do not survive a round-trip unchanged.
func Encode(records []Record) string {
	if len(records) == 0 {
		return "[]"
	}
	// Marshaling a slice of string pairs cannot fail.
	data, _ := json.Marshal(records)
	return string(data)
}

// Decode parses an encoded record-set.
// Returns ErrMalformedPayload if s is not a JSON array of records.
func Decode(s string) (Records, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, fmt.Errorf("%w: not a JSON array", ErrMalformedPayload)
	}

	var records Records
	if err := json.Unmarshal([]byte(trimmed), &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if records == nil {
		records = Records{}
	}

	return records, nil
}

// TryDecode parses an encoded record-set without failing.
// When s is malformed it returns a single record holding s under
// defaultLanguage and ok is false.
func TryDecode(s, defaultLanguage string) (records Records, ok bool) {
	records, err := Decode(s)
	if err != nil {
		return Records{{Key: defaultLanguage, Value: s}}, false
	}
	return records, true
}

// Init returns the encoded form of one empty record per language.
func Init(languages []string) string {
	records := make([]Record, 0, len(languages))
	for _, lang := range languages {
		records = append(records, Record{Key: lang})
	}
	return Encode(records)
}
