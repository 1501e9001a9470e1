package internal

// Field is a named localizable string slot.
type Field struct {
	Value *string
	Name  string
}

// F is shorthand for building a Field.
func F(name string, value *string) Field {
	return Field{Name: name, Value: value}
}

// Entity is implemented by types that list their localizable string slots explicitly.
// When implemented, struct tags are not consulted for the item's own fields.
type Entity interface {
	LocalizedFields() []Field
}

// Parent is implemented by types that list their nested localizable values explicitly.
// Each child may be an entity or a slice, array or map of entities.
// When implemented, the item's struct fields are not scanned for children.
type Parent interface {
	LocalizedChildren() []any
}
