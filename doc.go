// Package localized stores several language variants of a text field in a
// single string and resolves one language into that field on demand.
//
// A localized field holds a compact JSON record-set:
//
//	[{"k":"en","v":"Earth"},{"k":"ar","v":"أرض"}]
//
// Resolution replaces the payload with the value for the requested language,
// walking nested entities and collections as deep as asked.
//
// # Quick Start
//
// Mark string fields with the localized tag:
//
//	type Planet struct {
//	    Name  string   `localized:"true"`
//	    Moons []*Moon
//	}
//
//	type Moon struct {
//	    Name string `localized:"true"`
//	}
//
//	l := localized.New(
//	    localized.WithConfig(localized.Config{
//	        Required: []string{"en"},
//	        Optional: []string{"ar"},
//	    }),
//	)
//
//	planet, err := localized.Localize(l, planet, "ar", localized.OneLevel)
//
// # Fallback
//
// For each field the resolver takes the record for the requested language
// when its value is not blank, otherwise the record for the default language
// (the first configured one), otherwise the first record. Plain strings that
// are not payloads are left unchanged, so fields written before they became
// localized keep working and resolving twice is harmless. An empty record-set
// ([]) is reported as ErrNoLocalizedValues.
//
// # Depth
//
//   - Shallow: the item only
//   - OneLevel: the item and its direct children and collection elements
//   - Deep: everything reachable
//
// Children are exported fields holding structs, pointers to structs or
// interfaces, and slices, arrays or maps of them. Single children are visited
// before collections. Cycles are not detected unless WithCycleDetection is set.
//
// # Explicit Contracts
//
// Types can skip struct tags by implementing Entity and Parent:
//
//	func (p *Planet) LocalizedFields() []localized.Field {
//	    return []localized.Field{localized.F("Name", &p.Name)}
//	}
//
//	func (p *Planet) LocalizedChildren() []any {
//	    return []any{p.Moons}
//	}
//
// # Selected Fields
//
// LocalizeFields resolves only the fields returned by selectors, tagged or not:
//
//	planet, err := localized.LocalizeFields(l, planet, "ar",
//	    func(p *Planet) *string { return &p.Description },
//	)
//
// # Writing Payloads
//
//	planet, err = localized.SetMap(l, planet, nameOf, map[string]string{
//	    "en": "Earth",
//	    "ar": "أرض",
//	})
//
// Set, SetLanguage and InitField cover record slices, single-language updates
// and seeding empty payloads.
//
// # Collections
//
// LocalizeSeq resolves lazily, one element right before it is yielded.
// LocalizeConcurrent resolves independent items in parallel.
//
// # Errors
//
// A failure stops the call. Fields resolved before it keep their new values.
package localized
