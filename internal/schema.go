package internal

import (
	"reflect"
	"sync"
)

// DefaultTagName is the struct tag marking a string field as localized:
//
//	type Planet struct {
//		Name string `localized:"true"`
//	}
const DefaultTagName = "localized"

var (
	entityType = reflect.TypeFor[Entity]()
	parentType = reflect.TypeFor[Parent]()
)

// slot is a struct field reachable from the type root.
type slot struct {
	typ   reflect.Type
	name  string
	index []int
}

// schema describes where a struct type keeps its localizable data.
type schema struct {
	// Marked string fields, in declaration order.
	fields []slot
	// Fields that may hold a single nested entity.
	singles []slot
	// Fields that may hold a collection of entities.
	collections []slot
}

// registry caches schemas and reachability per type.
type registry struct {
	raw       sync.Map // reflect.Type -> *schema, every candidate slot
	schemas   sync.Map // reflect.Type -> *schema, slots that can reach localized data
	reachable sync.Map // reflect.Type -> bool
	tag       string
}

func newRegistry(tag string) *registry {
	return &registry{tag: tag}
}

// schemaOf returns the schema for struct type t, building it on first use.
// Child slots whose static type can never hold localized data are dropped.
// Interface slots are kept and checked at traversal time.
func (r *registry) schemaOf(t reflect.Type) *schema {
	if s, ok := r.schemas.Load(t); ok {
		return s.(*schema)
	}

	raw := r.rawOf(t)
	s := &schema{fields: raw.fields}
	for _, sl := range raw.singles {
		if sl.typ.Kind() == reflect.Interface || r.canReach(sl.typ) {
			s.singles = append(s.singles, sl)
		}
	}
	for _, sl := range raw.collections {
		if elem := sl.typ.Elem(); elem.Kind() == reflect.Interface || r.canReach(elem) {
			s.collections = append(s.collections, sl)
		}
	}

	actual, _ := r.schemas.LoadOrStore(t, s)
	return actual.(*schema)
}

// canReach reports whether a value of type t can hold localized data,
// directly or through non-interface child slots.
func (r *registry) canReach(t reflect.Type) bool {
	t = derefType(t)
	if v, ok := r.reachable.Load(t); ok {
		return v.(bool)
	}

	ok, _ := r.reach(t, make(map[reflect.Type]struct{}))
	r.reachable.Store(t, ok)

	return ok
}

// reach walks t depth-first. Types already on the stack count as unreachable;
// a negative answer that relied on such an assumption is provisional and not cached.
func (r *registry) reach(t reflect.Type, stack map[reflect.Type]struct{}) (ok, provisional bool) {
	t = derefType(t)
	if v, cached := r.reachable.Load(t); cached {
		return v.(bool), false
	}
	if hasContract(t) {
		r.reachable.Store(t, true)
		return true, false
	}
	if t.Kind() != reflect.Struct {
		return false, false
	}
	if _, onStack := stack[t]; onStack {
		return false, true
	}

	stack[t] = struct{}{}
	defer delete(stack, t)

	raw := r.rawOf(t)
	if len(raw.fields) > 0 {
		r.reachable.Store(t, true)
		return true, false
	}

	check := func(child reflect.Type) bool {
		if child.Kind() == reflect.Interface {
			return false
		}
		found, p := r.reach(child, stack)
		provisional = provisional || p
		return found
	}
	for _, sl := range raw.singles {
		if check(sl.typ) {
			r.reachable.Store(t, true)
			return true, false
		}
	}
	for _, sl := range raw.collections {
		if check(sl.typ.Elem()) {
			r.reachable.Store(t, true)
			return true, false
		}
	}

	if !provisional {
		r.reachable.Store(t, false)
	}
	return false, provisional
}

// canReachValue reports whether the entity target, as returned by entityOf,
// can hold localized data. Used for values behind interface slots and Parent.
func (r *registry) canReachValue(target reflect.Value) bool {
	if implementsContract(target) {
		return true
	}
	return r.canReach(target.Type())
}

func (r *registry) rawOf(t reflect.Type) *schema {
	if s, ok := r.raw.Load(t); ok {
		return s.(*schema)
	}
	s, _ := r.raw.LoadOrStore(t, buildSchema(t, r.tag))
	return s.(*schema)
}

func buildSchema(t reflect.Type, tag string) *schema {
	s := &schema{}

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}

		sl := slot{name: f.Name, index: f.Index, typ: f.Type}
		switch {
		case f.Type.Kind() == reflect.String:
			if isMarked(f.Tag, tag) {
				s.fields = append(s.fields, sl)
			}
		case canHoldEntity(f.Type):
			s.singles = append(s.singles, sl)
		case canHoldCollection(f.Type):
			s.collections = append(s.collections, sl)
		}
	}

	return s
}

func isMarked(tag reflect.StructTag, name string) bool {
	v, ok := tag.Lookup(name)
	return ok && v != "-" && v != "false"
}

func hasContract(t reflect.Type) bool {
	if t.Implements(entityType) || t.Implements(parentType) {
		return true
	}
	if t.Kind() == reflect.Interface {
		return false
	}
	pt := reflect.PointerTo(t)
	return pt.Implements(entityType) || pt.Implements(parentType)
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// canHoldEntity reports whether a value of type t may be a nested entity.
func canHoldEntity(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct, reflect.Interface:
		return true
	case reflect.Pointer:
		return t.Elem().Kind() == reflect.Struct
	default:
		return false
	}
}

// canHoldCollection reports whether t is a slice, array or map of possible entities.
// Collections of strings and other scalars are excluded.
func canHoldCollection(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return canHoldEntity(t.Elem())
	default:
		return false
	}
}
