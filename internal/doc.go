// Package internal provides the resolution engine behind the localized package.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/localized" instead, which re-exports the public API.
//
// # Components
//
//   - Localizer: immutable entry point holding the language provider, logger and schema registry
//   - resolver: decodes a field payload and picks the value for the requested language
//   - traverser: walks direct fields, nested entities and collections up to a Depth
//   - registry: per-type schema of marked string fields and of the child slots that can reach them, built once via reflection
//
// # Fallback
//
// For every non-empty payload the resolver picks, in order:
//
//  1. the record for the requested language with a non-blank value
//  2. the record for the default language, blank or not
//  3. the first record
//
// Values that are not valid payloads are left unchanged. An empty record-set
// is an error.
//
// # Failures
//
// Resolution stops at the first error. Fields resolved before the failure keep
// their new values; there is no rollback.
package internal
