package value

// The Must* constructors are heap-only (nil arena) convenience wrappers used
// by tests and call sites that don't need arena accounting. A nil arena
// never fails to allocate, so these cannot panic in practice.

func MustNull() *Value {
	v, _ := NewNull(nil)
	return v
}

func MustBool(b bool) *Value {
	v, _ := NewBool(b, nil)
	return v
}

func MustNumber(f float64) *Value {
	v, _ := NewNumber(f, nil)
	return v
}

func MustString(s string) *Value {
	v, _ := NewString(s, nil)
	return v
}

func MustArray(elems ...*Value) *Value {
	v, _ := NewArray(elems, nil)
	return v
}

// Pair is a single object field, for use with MustObject.
type Pair struct {
	Key   string
	Value *Value
}

// P builds a Pair, for terse test fixtures: value.MustObject(value.P("a", ...)).
func P(key string, v *Value) Pair {
	return Pair{Key: key, Value: v}
}

func MustObject(pairs ...Pair) *Value {
	obj := NewObjectMap()
	for _, p := range pairs {
		obj.Set(p.Key, p.Value)
	}
	v, _ := NewObjectValue(obj, nil)
	return v
}
