package localized

import (
	"github.com/dmitrymomot/localized/internal"
	"github.com/dmitrymomot/localized/pkg/langconfig"
	"github.com/dmitrymomot/localized/pkg/langrecord"
)

// Type aliases - public API
type (
	// Localizer resolves multi-language fields of object graphs.
	Localizer = internal.Localizer

	// Option configures a Localizer.
	Option = internal.Option

	// Depth controls how far resolution recurses into nested entities.
	Depth = internal.Depth

	// Field is a named localizable string slot.
	Field = internal.Field

	// Entity lists its localizable string slots explicitly.
	Entity = internal.Entity

	// Parent lists its nested localizable values explicitly.
	Parent = internal.Parent

	// Record is a single language variant of a text value.
	Record = langrecord.Record

	// Records is an ordered record-set.
	Records = langrecord.Records

	// Config holds the required and optional language lists.
	Config = langconfig.Config

	// LanguageProvider supplies the current language configuration.
	LanguageProvider = langconfig.Provider
)

// Depth values.
const (
	Shallow  = internal.Shallow
	OneLevel = internal.OneLevel
	Deep     = internal.Deep
)

// DefaultTagName is the struct tag marking localized string fields.
const DefaultTagName = internal.DefaultTagName

// Errors
var (
	ErrMalformedPayload  = internal.ErrMalformedPayload
	ErrNoLocalizedValues = internal.ErrNoLocalizedValues
	ErrInvalidSelector   = internal.ErrInvalidSelector
	ErrDuplicateLanguage = internal.ErrDuplicateLanguage
	ErrNotAddressable    = internal.ErrNotAddressable
)

// Selector returns a pointer to a string field of item.
// It must be a direct field access such as
//
//	func(p *Planet) *string { return &p.Name }
type Selector[T any] func(item T) *string

// New creates a Localizer.
//
// Example:
//
//	l := localized.New(
//	    localized.WithConfig(localized.Config{
//	        Required: []string{"en"},
//	        Optional: []string{"ar"},
//	    }),
//	    localized.WithLogger(log),
//	)
func New(opts ...Option) *Localizer {
	return internal.New(opts...)
}

// F is shorthand for building a Field in Entity implementations.
//
//	func (p *Planet) LocalizedFields() []localized.Field {
//	    return []localized.Field{localized.F("Name", &p.Name)}
//	}
func F(name string, value *string) Field {
	return internal.F(name, value)
}

// Localize resolves item for language and returns it.
// A nil item is returned as is.
//
// Example:
//
//	planet, err := localized.Localize(l, planet, "ar", localized.Deep)
func Localize[T any](l *Localizer, item T, language string, depth Depth) (T, error) {
	return item, l.Localize(item, language, depth)
}

// LocalizeFields resolves only the selected fields of item, marked or not.
// Nested entities are not visited. All selectors are validated before any
// field is modified.
//
// Example:
//
//	planet, err := localized.LocalizeFields(l, planet, "ar",
//	    func(p *Planet) *string { return &p.Name },
//	)
func LocalizeFields[T any](l *Localizer, item T, language string, selectors ...Selector[T]) (T, error) {
	if internal.IsNil(item) {
		return item, nil
	}

	fields, err := selectFields(item, selectors)
	if err != nil {
		return item, err
	}

	return item, l.LocalizeFields(item, language, fields...)
}

func selectFields[T any](item T, selectors []Selector[T]) ([]*string, error) {
	fields := make([]*string, len(selectors))
	for i, sel := range selectors {
		if sel == nil {
			return nil, ErrInvalidSelector
		}
		fields[i] = sel(item)
	}
	return fields, nil
}
