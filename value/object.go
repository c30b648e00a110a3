package value

// Object is an ordered mapping from string keys to *Value children.
// Insertion order is preserved for emission (it drives wire output, per the
// object-diff ordering rule); equality between two objects ignores order.
type Object struct {
	keys []string
	vals map[string]*Value
}

// NewObjectMap creates an empty ordered object.
func NewObjectMap() *Object {
	return &Object{vals: make(map[string]*Value)}
}

// Set adds or replaces the value at key. A new key is appended to the end
// of the insertion order; replacing an existing key preserves its position.
func (o *Object) Set(key string, v *Value) {
	if _, exists := o.vals[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get looks up key, reporting whether it is present.
func (o *Object) Get(key string) (*Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Delete removes key, if present, preserving the relative order of the
// remaining keys.
func (o *Object) Delete(key string) {
	if _, ok := o.vals[key]; !ok {
		return
	}
	delete(o.vals, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the object's keys in insertion order. The returned slice must
// not be mutated by the caller.
func (o *Object) Keys() []string {
	return o.keys
}

// Len reports the number of keys in the object.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}
