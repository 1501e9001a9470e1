// Package langrecord encodes and decodes multi-language record-sets.
//
// A record-set is an ordered list of (language, value) pairs stored in a single
// string field as a compact JSON array:
//
//	[{"k":"en","v":"Earth"},{"k":"ar","v":"أرض"}]
//
// Encode and Decode round-trip any well-formed record-set whose keys and values are
// valid UTF-8. Invalid bytes are replaced with U+FFFD on encoding, the same way
// encoding/json treats them; sanitize binary data before storing it. TryDecode never fails:
// values that are not valid payloads (plain strings written before a field became
// multi-language) come back as a single record in the default language, with ok
// set to false so callers can tell them apart.
//
// # Seeding new fields
//
// Init produces one empty record per language:
//
//	payload := langrecord.Init([]string{"en", "de"})
//	// [{"k":"en","v":""},{"k":"de","v":""}]
//
// # Building from maps
//
// FromMap converts a language-to-value map into a deterministic record-set.
// Languages listed in order come first, the remaining keys follow alphabetically:
//
//	records := langrecord.FromMap(map[string]string{"de": "Erde", "en": "Earth"}, []string{"en"})
//	payload := langrecord.Encode(records)
package langrecord
