package internal

import (
	"errors"

	"github.com/dmitrymomot/localized/pkg/langrecord"
)

var (
	// ErrMalformedPayload is returned by strict decoding of an invalid payload.
	ErrMalformedPayload = langrecord.ErrMalformedPayload

	// ErrNoLocalizedValues is returned when a field holds an empty record-set.
	ErrNoLocalizedValues = errors.New("localized: no localized values")

	// ErrInvalidSelector is returned when a selector does not point to a string
	// field of the item itself.
	ErrInvalidSelector = errors.New("localized: selector is not a direct property access")

	// ErrDuplicateLanguage is returned when more than one record matches
	// the language being looked up.
	ErrDuplicateLanguage = errors.New("localized: duplicate language records")

	// ErrNotAddressable is returned when the item can not be modified in place.
	ErrNotAddressable = errors.New("localized: item must be a pointer to a struct or implement Entity")
)
