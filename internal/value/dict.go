package value

// Dict is an insertion-order-preserving mapping from a scalar key
// (string, bool, or number, compared by its String() form) to a Value.
//
// The teacher's evaluator.Map is a persistent HAMT (object.go) built
// for structural sharing across an immutable functional object model.
// Ringneck dicts are host-mutable record values that scripts write
// into in place (spec.md §4.4's Dict/Assign rules), so a plain ordered
// slice-plus-index map is the simpler, better-grounded fit; it follows
// the same "slice of keys + lookup index" shape the teacher's List
// uses for its backing PersistentVector, just without persistence.
type Dict struct {
	keys   []string
	index  map[string]int
	values []Value
}

// NewDict returns an empty Dict.
func NewDict() *Dict {
	return &Dict{index: map[string]int{}}
}

func (d *Dict) Kind() Kind { return DictKind }

func (d *Dict) String() string {
	s := ""
	for i, k := range d.keys {
		if i > 0 {
			s += ", "
		}
		s += k + ": " + d.values[i].String()
	}
	return s
}

func (d *Dict) Truthy() bool { return len(d.keys) > 0 }

// Keys reports the dict's keys in insertion order.
func (d *Dict) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Get looks up key, reporting false if it is absent.
func (d *Dict) Get(key string) (Value, bool) {
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.values[i], true
}

// Set inserts or overwrites key, preserving the position of an
// existing key and appending a new one at the end.
func (d *Dict) Set(key string, v Value) {
	if i, ok := d.index[key]; ok {
		d.values[i] = v
		return
	}
	d.index[key] = len(d.keys)
	d.keys = append(d.keys, key)
	d.values = append(d.values, v)
}

// Len reports the number of entries.
func (d *Dict) Len() int { return len(d.keys) }
