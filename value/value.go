// Package value defines the seven-variant JSON value model that the diff,
// patch, and wire packages operate on, along with its structural equality
// predicate. It never mutates a value tree it did not just construct.
package value

import (
	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
)

// Kind distinguishes the seven JSON value variants.
type Kind uint8

const (
	KindNull Kind = iota
	KindFalse
	KindTrue
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindFalse:
		return "false"
	case KindTrue:
		return "true"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a single JSON value. Null/True/False carry no payload; Number
// carries Num; String carries Str; Array carries Arr; Object carries Obj.
// A nil *Value denotes "absent" (no value at this position), distinct from
// a JSON null, which is a non-nil Value with Kind == KindNull.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Arr  []*Value
	Obj  *Object
}

// baseNodeSize approximates the bytes a single Value node occupies, for the
// purpose of charging an Arena budget. It is intentionally conservative
// rather than exact — the arena enforces a policy, not a precise memory
// layout.
const baseNodeSize = 56

// NewNull constructs a JSON null.
func NewNull(a *arena.Arena) (*Value, error) {
	if err := a.Allocate(baseNodeSize); err != nil {
		return nil, err
	}
	return &Value{Kind: KindNull}, nil
}

// NewBool constructs a JSON true or false.
func NewBool(b bool, a *arena.Arena) (*Value, error) {
	if err := a.Allocate(baseNodeSize); err != nil {
		return nil, err
	}
	k := KindFalse
	if b {
		k = KindTrue
	}
	return &Value{Kind: k}, nil
}

// NewNumber constructs a JSON number from an IEEE-754 double.
func NewNumber(f float64, a *arena.Arena) (*Value, error) {
	if err := a.Allocate(baseNodeSize); err != nil {
		return nil, err
	}
	return &Value{Kind: KindNumber, Num: f}, nil
}

// NewString constructs a JSON string.
func NewString(s string, a *arena.Arena) (*Value, error) {
	if err := a.Allocate(baseNodeSize + len(s)); err != nil {
		return nil, err
	}
	return &Value{Kind: KindString, Str: s}, nil
}

// NewArray constructs a JSON array from already-owned elements.
func NewArray(elems []*Value, a *arena.Arena) (*Value, error) {
	if err := a.Allocate(baseNodeSize + 8*len(elems)); err != nil {
		return nil, err
	}
	return &Value{Kind: KindArray, Arr: elems}, nil
}

// NewObjectValue constructs a JSON object from an already-owned Object. A
// nil obj is treated as an empty object.
func NewObjectValue(obj *Object, a *arena.Arena) (*Value, error) {
	if obj == nil {
		obj = NewObjectMap()
	}
	if err := a.Allocate(baseNodeSize + 16*obj.Len()); err != nil {
		return nil, err
	}
	return &Value{Kind: KindObject, Obj: obj}, nil
}

// Bool reports the boolean payload of a True/False value.
func (v *Value) Bool() bool {
	return v != nil && v.Kind == KindTrue
}

// IsContainer reports whether v is an array or object.
func (v *Value) IsContainer() bool {
	return v != nil && (v.Kind == KindArray || v.Kind == KindObject)
}
