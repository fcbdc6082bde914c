package value

import (
	"fmt"
	"reflect"
)

// FromGo lifts a raw Go value read off the host subject into the
// interpreter's own Value domain, so scripts observe host data the
// same way they observe their own state.
func FromGo(raw any) Value {
	if raw == nil {
		return NullValue
	}
	switch v := raw.(type) {
	case Value:
		return v
	case bool:
		return Bool{Value: v}
	case string:
		return Str{Value: v}
	case int:
		return Int{Value: int64(v)}
	case int32:
		return Int{Value: int64(v)}
	case int64:
		return Int{Value: v}
	case float32:
		return Float{Value: float64(v)}
	case float64:
		return Float{Value: v}
	case map[string]any:
		d := NewDict()
		for k, item := range v {
			d.Set(k, FromGo(item))
		}
		return d
	case []any:
		l := &List{}
		for _, item := range v {
			l.Elements = append(l.Elements, FromGo(item))
		}
		return l
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return NullValue
		}
		return FromGo(rv.Elem().Interface())
	case reflect.Map:
		d := NewDict()
		iter := rv.MapRange()
		for iter.Next() {
			d.Set(fmt.Sprintf("%v", iter.Key().Interface()), FromGo(iter.Value().Interface()))
		}
		return d
	case reflect.Slice, reflect.Array:
		l := &List{}
		for i := 0; i < rv.Len(); i++ {
			l.Elements = append(l.Elements, FromGo(rv.Index(i).Interface()))
		}
		return l
	case reflect.Struct:
		d := NewDict()
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			if !field.IsExported() {
				continue
			}
			d.Set(field.Name, FromGo(rv.Field(i).Interface()))
		}
		return d
	}
	return HostRef{Raw: raw}
}

// ToGo lowers an interpreter Value back to a plain Go value suitable
// for writing onto the host subject through reflection.
func ToGo(v Value) (any, error) {
	switch val := v.(type) {
	case Null:
		return nil, nil
	case Bool:
		return val.Value, nil
	case Int:
		return val.Value, nil
	case Float:
		return val.Value, nil
	case Str:
		return val.Value, nil
	case HostRef:
		return val.Raw, nil
	case *List:
		out := make([]any, len(val.Elements))
		for i, e := range val.Elements {
			goVal, err := ToGo(e)
			if err != nil {
				return nil, err
			}
			out[i] = goVal
		}
		return out, nil
	case *Tuple:
		out := make([]any, len(val.Elements))
		for i, e := range val.Elements {
			goVal, err := ToGo(e)
			if err != nil {
				return nil, err
			}
			out[i] = goVal
		}
		return out, nil
	case *Dict:
		out := make(map[string]any, val.Len())
		for _, k := range val.Keys() {
			item, _ := val.Get(k)
			goVal, err := ToGo(item)
			if err != nil {
				return nil, err
			}
			out[k] = goVal
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot convert %s value to a host value", v.Kind())
	}
}
