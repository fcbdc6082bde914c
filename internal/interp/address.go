package interp

import (
	"reflect"
	"strings"

	"github.com/ringneck-lang/ringneck/internal/value"
)

// address is a parsed dotted variable/subject path, per spec.md §4.5.
type address struct {
	subject  bool
	segments []string
}

// parseAddress splits a dotted lexeme into its segments, dropping a
// leading "$" to mark a subject-rooted address.
func parseAddress(lexeme string) address {
	segments := strings.Split(lexeme, ".")
	if len(segments) > 0 && segments[0] == "$" {
		return address{subject: true, segments: segments[1:]}
	}
	return address{subject: false, segments: segments}
}

// readAddress resolves addr for a read, returning value.NullValue if
// any step along the path is unresolved (spec.md §4.5 rule 3).
func (it *Interpreter) readAddress(addr address) (value.Value, error) {
	if addr.subject {
		raw, ok := readHostPath(it.subject, addr.segments)
		if !ok {
			return value.NullValue, nil
		}
		return value.FromGo(raw), nil
	}

	if len(addr.segments) == 0 {
		return value.NullValue, nil
	}
	cur, ok := it.lookupName(addr.segments[0])
	if !ok {
		return value.NullValue, nil
	}
	for _, seg := range addr.segments[1:] {
		cur, ok = readFromValue(cur, seg)
		if !ok {
			return value.NullValue, nil
		}
	}
	return cur, nil
}

func (it *Interpreter) lookupName(name string) (value.Value, bool) {
	if v, ok := it.scope[name]; ok {
		return v, true
	}
	if v, ok := it.builtins[name]; ok {
		return v, true
	}
	return nil, false
}

// writeAddress writes v to addr, per spec.md §4.5 rule 4: traverse to
// the penultimate node, then set the final segment there. The
// interpreter never creates missing intermediate segments.
func (it *Interpreter) writeAddress(addr address, v value.Value) error {
	if addr.subject {
		if len(addr.segments) == 0 {
			return &RuntimeError{Message: "cannot assign to the subject root"}
		}
		raw, err := value.ToGo(v)
		if err != nil {
			return err
		}
		if !writeHostPath(it.subject, addr.segments, raw) {
			return &RuntimeError{Message: "unresolved subject address: $." + strings.Join(addr.segments, ".")}
		}
		return nil
	}

	if len(addr.segments) == 0 {
		return &RuntimeError{Message: "empty variable address"}
	}
	if len(addr.segments) == 1 {
		it.scope[addr.segments[0]] = v
		return nil
	}

	cur, ok := it.lookupName(addr.segments[0])
	if !ok {
		return &RuntimeError{Message: "unresolved variable address: " + addr.segments[0]}
	}
	for _, seg := range addr.segments[1 : len(addr.segments)-1] {
		cur, ok = readFromValue(cur, seg)
		if !ok {
			return &RuntimeError{Message: "unresolved variable address segment: " + seg}
		}
	}
	last := addr.segments[len(addr.segments)-1]
	if d, ok := cur.(*value.Dict); ok {
		d.Set(last, v)
		return nil
	}
	return &RuntimeError{Message: "cannot write segment " + last + ": not a mapping"}
}

// readFromValue resolves one address segment against an interpreter
// Value, mirroring the (a) attribute then (b) mapping-key order
// spec.md §4.5 specifies, restricted to the shapes Ringneck's own
// value domain actually has (a Dict is the only mapping kind; there is
// no attribute-bearing Value kind in pure state, unlike the host
// side).
func readFromValue(v value.Value, seg string) (value.Value, bool) {
	d, ok := v.(*value.Dict)
	if !ok {
		return nil, false
	}
	return d.Get(seg)
}

// readHostPath walks a raw host value using reflection: each segment
// is resolved first as a named struct field (matched
// case-insensitively), then as a map key, mirroring the original interpreter's getattr-then-__getitem__
// order.
func readHostPath(root any, segments []string) (any, bool) {
	cur := reflect.ValueOf(root)
	for _, seg := range segments {
		next, ok := readHostSegment(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	if !cur.IsValid() {
		return nil, false
	}
	return cur.Interface(), true
}

func readHostSegment(v reflect.Value, seg string) (reflect.Value, bool) {
	v = indirect(v)
	if !v.IsValid() {
		return reflect.Value{}, false
	}

	switch v.Kind() {
	case reflect.Struct:
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, seg)
		})
		if field.IsValid() {
			return field, true
		}
	case reflect.Map:
		key := reflect.ValueOf(seg)
		if v.Type().Key().Kind() == reflect.String {
			item := v.MapIndex(key.Convert(v.Type().Key()))
			if item.IsValid() {
				return item, true
			}
		}
	}
	return reflect.Value{}, false
}

// writeHostPath traverses to the penultimate segment and sets the
// final one, never creating missing intermediate segments.
func writeHostPath(root any, segments []string, val any) bool {
	if len(segments) == 0 {
		return false
	}
	cur := reflect.ValueOf(root)
	for _, seg := range segments[:len(segments)-1] {
		next, ok := readHostSegment(cur, seg)
		if !ok {
			return false
		}
		cur = next
	}
	return setHostSegment(cur, segments[len(segments)-1], val)
}

func setHostSegment(v reflect.Value, seg string, val any) bool {
	v = indirect(v)
	if !v.IsValid() {
		return false
	}

	switch v.Kind() {
	case reflect.Map:
		if !v.CanSet() && v.IsNil() {
			return false
		}
		keyType := v.Type().Key()
		if keyType.Kind() != reflect.String {
			return false
		}
		elemType := v.Type().Elem()
		valRV := reflect.ValueOf(val)
		if !valRV.IsValid() {
			valRV = reflect.Zero(elemType)
		} else if valRV.Type().ConvertibleTo(elemType) {
			valRV = valRV.Convert(elemType)
		} else {
			return false
		}
		v.SetMapIndex(reflect.ValueOf(seg).Convert(keyType), valRV)
		return true
	case reflect.Struct:
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, seg)
		})
		if !field.IsValid() || !field.CanSet() {
			return false
		}
		valRV := reflect.ValueOf(val)
		if valRV.IsValid() && valRV.Type().ConvertibleTo(field.Type()) {
			field.Set(valRV.Convert(field.Type()))
			return true
		}
	}
	return false
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
