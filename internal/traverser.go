package internal

import (
	"reflect"
	"unsafe"
)

type visitKey struct {
	ptr unsafe.Pointer
	typ reflect.Type
}

// visit resolves the entity held by v and descends into its children.
func (r *run) visit(v reflect.Value, depth Depth) error {
	target, ok := entityOf(v)
	if !ok {
		return nil
	}
	return r.enter(target, depth)
}

// visitChild is visit for nested values. Values whose type can never hold
// localized data are not entered, so back-pointers between plain structs
// never recurse.
func (r *run) visitChild(v reflect.Value, depth Depth) error {
	target, ok := entityOf(v)
	if !ok || !r.registry.canReachValue(target) {
		return nil
	}
	return r.enter(target, depth)
}

func (r *run) enter(target reflect.Value, depth Depth) error {
	if r.seen(target) {
		return nil
	}

	if err := r.resolveFields(target); err != nil {
		return err
	}

	if depth == Shallow {
		return nil
	}

	return r.visitChildren(target, depth.child())
}

// resolveFields resolves the item's own localized string fields.
func (r *run) resolveFields(target reflect.Value) error {
	if e, ok := asEntity(target); ok {
		for _, f := range e.LocalizedFields() {
			if f.Value == nil {
				continue
			}
			if err := r.resolveSlot(f.Name, f.Value); err != nil {
				return err
			}
		}
		return nil
	}

	if target.Kind() != reflect.Pointer {
		return nil
	}

	elem := target.Elem()
	for _, sl := range r.registry.schemaOf(elem.Type()).fields {
		fv, err := elem.FieldByIndexErr(sl.index)
		if err != nil || !fv.CanSet() {
			continue
		}

		resolved, changed, err := r.resolveValue(sl.name, fv.String())
		if err != nil {
			return err
		}
		if changed {
			fv.SetString(resolved)
		}
	}

	return nil
}

// visitChildren descends into nested entities first, then into collections.
func (r *run) visitChildren(target reflect.Value, depth Depth) error {
	if p, ok := asParent(target); ok {
		for _, child := range p.LocalizedChildren() {
			if err := r.visitAny(reflect.ValueOf(child), depth); err != nil {
				return err
			}
		}
		return nil
	}

	if target.Kind() != reflect.Pointer {
		return nil
	}

	elem := target.Elem()
	s := r.registry.schemaOf(elem.Type())

	for _, sl := range s.singles {
		fv, err := elem.FieldByIndexErr(sl.index)
		if err != nil {
			continue
		}
		if err := r.visitChild(fv, depth); err != nil {
			return err
		}
	}

	for _, sl := range s.collections {
		fv, err := elem.FieldByIndexErr(sl.index)
		if err != nil {
			continue
		}
		if err := r.visitCollection(fv, depth); err != nil {
			return err
		}
	}

	return nil
}

// visitAny handles values returned by Parent, which may be entities or collections.
func (r *run) visitAny(v reflect.Value, depth Depth) error {
	v = unwrapInterface(v)
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return r.visitCollection(v, depth)
	default:
		return r.visitChild(v, depth)
	}
}

// visitCollection visits every element in iteration order.
// Elements that are not entities are skipped.
func (r *run) visitCollection(v reflect.Value, depth Depth) error {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			if err := r.visitChild(v.Index(i), depth); err != nil {
				return err
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if err := r.visitChild(iter.Value(), depth); err != nil {
				return err
			}
		}
	}
	return nil
}

// seen records target when cycle detection is enabled and reports
// whether it was already visited during this run.
func (r *run) seen(target reflect.Value) bool {
	if r.visited == nil || target.Kind() != reflect.Pointer {
		return false
	}

	key := visitKey{ptr: target.UnsafePointer(), typ: target.Type()}
	if _, ok := r.visited[key]; ok {
		return true
	}
	r.visited[key] = struct{}{}

	return false
}

// entityOf normalizes v to a non-nil pointer to a struct, or to a value
// implementing Entity or Parent. The boolean is false when v can not be
// resolved in place.
func entityOf(v reflect.Value) (reflect.Value, bool) {
	v = unwrapInterface(v)
	if !v.IsValid() {
		return reflect.Value{}, false
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Value{}, false
		}
		if v.Elem().Kind() == reflect.Struct || implementsContract(v) {
			return v, true
		}
	case reflect.Struct:
		if v.CanAddr() {
			return v.Addr(), true
		}
		if implementsContract(v) {
			return v, true
		}
	default:
		if implementsContract(v) {
			return v, true
		}
	}

	return reflect.Value{}, false
}

func unwrapInterface(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func implementsContract(v reflect.Value) bool {
	_, isEntity := asEntity(v)
	_, isParent := asParent(v)
	return isEntity || isParent
}

func asEntity(v reflect.Value) (Entity, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	e, ok := v.Interface().(Entity)
	return e, ok
}

func asParent(v reflect.Value) (Parent, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	p, ok := v.Interface().(Parent)
	return p, ok
}
