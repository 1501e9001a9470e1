package localized

import (
	"github.com/dmitrymomot/localized/internal"
	"github.com/dmitrymomot/localized/pkg/langrecord"
)

// Set encodes records and writes the payload into the selected field.
// Nothing is resolved.
//
// Example:
//
//	planet, err := localized.Set(planet, func(p *Planet) *string { return &p.Name },
//	    localized.Record{Key: "en", Value: "Earth"},
//	    localized.Record{Key: "ar", Value: "أرض"},
//	)
func Set[T any](item T, selector Selector[T], records ...Record) (T, error) {
	ptr, err := selectField(item, selector)
	if err != nil {
		return item, err
	}

	*ptr = langrecord.Encode(records)

	return item, nil
}

// SetMap writes a language-to-value map into the selected field.
// Records follow the configured language order, other languages come last
// in alphabetical order.
func SetMap[T any](l *Localizer, item T, selector Selector[T], values map[string]string) (T, error) {
	ptr, err := selectField(item, selector)
	if err != nil {
		return item, err
	}

	*ptr = l.Encode(values)

	return item, nil
}

// SetLanguage writes value for a single language into the payload of the
// selected field, keeping the other languages. A plain legacy value is kept
// as the default-language record.
func SetLanguage[T any](l *Localizer, item T, selector Selector[T], language, value string) (T, error) {
	ptr, err := selectField(item, selector)
	if err != nil {
		return item, err
	}

	records := langrecord.Records{}
	if *ptr != "" {
		records, _ = langrecord.TryDecode(*ptr, l.Languages().DefaultLanguage())
	}
	*ptr = langrecord.Encode(records.With(language, value))

	return item, nil
}

// InitField seeds the selected field with one empty record per configured language.
func InitField[T any](l *Localizer, item T, selector Selector[T]) (T, error) {
	ptr, err := selectField(item, selector)
	if err != nil {
		return item, err
	}

	*ptr = langrecord.Init(l.Languages().AllLanguages())

	return item, nil
}

func selectField[T any](item T, selector Selector[T]) (*string, error) {
	if internal.IsNil(item) {
		return nil, ErrNotAddressable
	}

	fields, err := selectFields(item, []Selector[T]{selector})
	if err != nil {
		return nil, err
	}
	if _, err := internal.CheckSelectors(item, fields...); err != nil {
		return nil, err
	}

	return fields[0], nil
}
