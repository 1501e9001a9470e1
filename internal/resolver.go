package internal

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/localized/pkg/langrecord"
)

// resolveValue returns the value of current for the run language.
// The boolean is false when current must be left untouched: it is empty
// or is not an encoded record-set.
func (r *run) resolveValue(name, current string) (string, bool, error) {
	if current == "" {
		return current, false, nil
	}

	records, ok := langrecord.TryDecode(current, r.defaultLang)
	if !ok {
		r.logger.Debug("leaving legacy value unchanged", slog.String("field", name))
		return current, false, nil
	}

	rec, err := pick(records, r.lang, r.defaultLang)
	if err != nil {
		return current, false, fmt.Errorf("field %q: %w", name, err)
	}

	return rec.Value, true, nil
}

// resolveSlot resolves the string behind ptr in place.
func (r *run) resolveSlot(name string, ptr *string) error {
	resolved, changed, err := r.resolveValue(name, *ptr)
	if err != nil {
		return err
	}
	if changed {
		*ptr = resolved
	}
	return nil
}

// pick selects the record for language with the default language fallback.
func pick(records langrecord.Records, language, defaultLanguage string) (langrecord.Record, error) {
	if len(records) == 0 {
		return langrecord.Record{}, ErrNoLocalizedValues
	}

	rec, found, err := single(records, func(rec langrecord.Record) bool {
		return rec.Key == language && !rec.IsBlank()
	})
	if err != nil || found {
		return rec, err
	}

	rec, found, err = single(records, func(rec langrecord.Record) bool {
		return rec.Key == defaultLanguage
	})
	if err != nil || found {
		return rec, err
	}

	return records[0], nil
}

// single returns the only record matching match.
// More than one match is reported as ErrDuplicateLanguage.
func single(records langrecord.Records, match func(langrecord.Record) bool) (langrecord.Record, bool, error) {
	var (
		result langrecord.Record
		found  bool
	)
	for _, rec := range records {
		if !match(rec) {
			continue
		}
		if found {
			return langrecord.Record{}, false, fmt.Errorf("%w: %q", ErrDuplicateLanguage, rec.Key)
		}
		result, found = rec, true
	}
	return result, found, nil
}
