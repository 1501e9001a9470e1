package internal

import (
	"fmt"
	"log/slog"
	"reflect"
	"unsafe"

	"github.com/dmitrymomot/localized/pkg/langconfig"
	"github.com/dmitrymomot/localized/pkg/langrecord"
)

// Localizer resolves multi-language fields of object graphs.
// It is immutable after creation and safe for concurrent use across
// independent graphs. Resolving the same graph from several goroutines
// at once is not synchronized.
type Localizer struct {
	languages    langconfig.Provider
	logger       *slog.Logger
	registry     *registry
	tagName      string
	detectCycles bool
}

// New creates a Localizer with the given options.
// Without options it resolves against a single "en" language.
func New(opts ...Option) *Localizer {
	l := &Localizer{
		languages: langconfig.Static(langconfig.Config{}),
		logger:    slog.New(slog.DiscardHandler),
		tagName:   DefaultTagName,
	}

	for _, opt := range opts {
		opt(l)
	}

	l.registry = newRegistry(l.tagName)

	return l
}

// Languages returns the current language configuration.
func (l *Localizer) Languages() langconfig.Config {
	return l.languages.Languages()
}

// Localize resolves the marked fields of item for language and, depending on
// depth, of its nested entities and collections. A nil item is a no-op.
func (l *Localizer) Localize(item any, language string, depth Depth) error {
	if IsNil(item) {
		return nil
	}

	target, ok := entityOf(reflect.ValueOf(item))
	if !ok {
		return ErrNotAddressable
	}

	return l.newRun(language).visit(target, depth)
}

// LocalizeFields resolves only the given fields of item, whether marked or not.
// Every field must point into item itself; this is checked before anything is
// modified. Nested entities are not visited. A nil item is a no-op.
func (l *Localizer) LocalizeFields(item any, language string, fields ...*string) error {
	if IsNil(item) {
		return nil
	}

	names, err := CheckSelectors(item, fields...)
	if err != nil {
		return err
	}

	r := l.newRun(language)
	for i, ptr := range fields {
		if err := r.resolveSlot(names[i], ptr); err != nil {
			return err
		}
	}

	return nil
}

// Value resolves a single payload string for language.
// Legacy values are returned unchanged.
func (l *Localizer) Value(payload, language string) (string, error) {
	resolved, _, err := l.newRun(language).resolveValue("value", payload)
	return resolved, err
}

// Encode returns the payload for values, ordered by the configured languages.
func (l *Localizer) Encode(values map[string]string) string {
	return langrecord.Encode(langrecord.FromMap(values, l.Languages().AllLanguages()))
}

// run holds the state of one resolution call.
// The language configuration is read once per run.
type run struct {
	*Localizer
	visited     map[visitKey]struct{}
	logger      *slog.Logger
	lang        string
	defaultLang string
}

func (l *Localizer) newRun(language string) *run {
	defaultLang := l.Languages().DefaultLanguage()

	r := &run{
		Localizer:   l,
		lang:        language,
		defaultLang: defaultLang,
		logger: l.logger.With(
			slog.String("language", language),
			slog.String("default_language", defaultLang),
		),
	}
	if l.detectCycles {
		r.visited = make(map[visitKey]struct{})
	}

	return r
}

// CheckSelectors verifies that every field is a direct string field of item
// and returns their names. For pointers to structs the field must lie inside
// the struct; for Entity implementations it must be one of the listed fields.
func CheckSelectors(item any, fields ...*string) ([]string, error) {
	names := make([]string, len(fields))

	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer && !v.IsNil() && v.Elem().Kind() == reflect.Struct {
		base := v.Pointer()
		size := v.Elem().Type().Size()
		for i, ptr := range fields {
			if ptr == nil {
				return nil, fmt.Errorf("%w: selector %d returned nil", ErrInvalidSelector, i)
			}
			offset := uintptr(unsafe.Pointer(ptr)) - base
			if uintptr(unsafe.Pointer(ptr)) < base || offset+unsafe.Sizeof(*ptr) > size {
				return nil, fmt.Errorf("%w: selector %d points outside %s", ErrInvalidSelector, i, v.Type())
			}
			name, ok := fieldNameAt(v.Elem().Type(), offset)
			if !ok {
				return nil, fmt.Errorf("%w: selector %d is not a string field of %s", ErrInvalidSelector, i, v.Type())
			}
			names[i] = name
		}
		return names, nil
	}

	if e, ok := item.(Entity); ok {
		known := make(map[*string]string)
		for _, f := range e.LocalizedFields() {
			if f.Value != nil {
				known[f.Value] = f.Name
			}
		}
		for i, ptr := range fields {
			name, ok := known[ptr]
			if !ok {
				return nil, fmt.Errorf("%w: selector %d is not a field of %T", ErrInvalidSelector, i, item)
			}
			names[i] = name
		}
		return names, nil
	}

	return nil, ErrNotAddressable
}

// fieldNameAt returns the name of the string field starting exactly at offset,
// searching nested struct values. Array elements and bytes inside other
// fields do not match.
func fieldNameAt(t reflect.Type, offset uintptr) (string, bool) {
	for i := range t.NumField() {
		f := t.Field(i)
		if offset < f.Offset || offset >= f.Offset+f.Type.Size() {
			continue
		}
		switch f.Type.Kind() {
		case reflect.String:
			if offset == f.Offset {
				return f.Name, true
			}
		case reflect.Struct:
			if name, ok := fieldNameAt(f.Type, offset-f.Offset); ok {
				return f.Name + "." + name, true
			}
		}
		return "", false
	}
	return "", false
}

// IsNil reports whether v is nil or a typed nil pointer, map, slice or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
