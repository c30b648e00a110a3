// Package wire implements the jsondiffpatch wire grammar: the three
// value-position diff shapes (change triple, addition single, deletion
// triple), the array-diff "_t":"a" marker, and the move-operation extension
// recognised on patch. Encoding always deep-clones its inputs, so a diff
// tree never aliases the trees it was built from.
package wire

import (
	"strconv"
	"strings"

	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
	"github.com/pfrederiksen/jsondiffpatch/value"
)

// ArrayTypeKey and ArrayTypeValue form the reserved "_t":"a" array-diff marker.
const (
	ArrayTypeKey   = "_t"
	ArrayTypeValue = "a"
)

// Shape tags the recognised wire shapes at a value position.
type Shape int

const (
	ShapeInvalid Shape = iota
	ShapeAddition
	ShapeChange
	ShapeDeletion
	ShapeMove
)

// Change builds a change triple [clone(old), clone(new)].
func Change(old, next *value.Value, a *arena.Arena) (*value.Value, error) {
	oc, err := value.Clone(old, a)
	if err != nil {
		return nil, err
	}
	nc, err := value.Clone(next, a)
	if err != nil {
		return nil, err
	}
	return value.NewArray([]*value.Value{oc, nc}, a)
}

// Addition builds an addition single [clone(next)].
func Addition(next *value.Value, a *arena.Arena) (*value.Value, error) {
	nc, err := value.Clone(next, a)
	if err != nil {
		return nil, err
	}
	return value.NewArray([]*value.Value{nc}, a)
}

// Deletion builds a deletion triple [clone(old), 0, 0].
func Deletion(old *value.Value, a *arena.Arena) (*value.Value, error) {
	oc, err := value.Clone(old, a)
	if err != nil {
		return nil, err
	}
	z1, err := value.NewNumber(0, a)
	if err != nil {
		return nil, err
	}
	z2, err := value.NewNumber(0, a)
	if err != nil {
		return nil, err
	}
	return value.NewArray([]*value.Value{oc, z1, z2}, a)
}

// Move builds the patch-only move operation ["", dest, 3].
func Move(dest int, a *arena.Arena) (*value.Value, error) {
	empty, err := value.NewString("", a)
	if err != nil {
		return nil, err
	}
	d, err := value.NewNumber(float64(dest), a)
	if err != nil {
		return nil, err
	}
	three, err := value.NewNumber(3, a)
	if err != nil {
		return nil, err
	}
	return value.NewArray([]*value.Value{empty, d, three}, a)
}

// NewArrayDiffMarker builds the "a" string value bound to the "_t" key.
func NewArrayDiffMarker(a *arena.Arena) (*value.Value, error) {
	return value.NewString(ArrayTypeValue, a)
}

// IsArrayDiffMarker reports whether obj is an object carrying the
// "_t":"a" array-diff marker.
func IsArrayDiffMarker(obj *value.Value) bool {
	if obj == nil || obj.Kind != value.KindObject {
		return false
	}
	t, ok := obj.Obj.Get(ArrayTypeKey)
	return ok && t != nil && t.Kind == value.KindString && t.Str == ArrayTypeValue
}

// Classify inspects a value-position diff node (always a JSON array in the
// wire grammar) and reports which of the four shapes it matches. A node that
// is not an array, or an array whose arity/content matches none of the
// shapes, classifies as ShapeInvalid. Callers apply a tolerant-skip policy:
// treat ShapeInvalid as "ignore this entry", not a hard error.
func Classify(node *value.Value) Shape {
	if node == nil || node.Kind != value.KindArray {
		return ShapeInvalid
	}
	switch len(node.Arr) {
	case 1:
		return ShapeAddition
	case 2:
		return ShapeChange
	case 3:
		if isMoveShape(node.Arr) {
			return ShapeMove
		}
		if isZero(node.Arr[1]) && isZero(node.Arr[2]) {
			return ShapeDeletion
		}
		return ShapeInvalid
	default:
		return ShapeInvalid
	}
}

func isZero(v *value.Value) bool {
	return v != nil && v.Kind == value.KindNumber && v.Num == 0
}

func isMoveShape(arr []*value.Value) bool {
	return arr[0] != nil && arr[0].Kind == value.KindString && arr[0].Str == "" &&
		arr[1] != nil && arr[1].Kind == value.KindNumber &&
		arr[2] != nil && arr[2].Kind == value.KindNumber && arr[2].Num == 3
}

// Old returns the "old" side of a change or deletion node. Callers must
// Classify first: Old does no shape check and returns the first element of
// any array, panicking only on a nil node or an empty array.
func Old(node *value.Value) *value.Value {
	return node.Arr[0]
}

// New returns the "new" side of a change or addition node. Callers must
// Classify first: New does no shape check, returning the only element of a
// 1-element array and the second element of any longer one, and panics on a
// nil node or an empty array.
func New(node *value.Value) *value.Value {
	if len(node.Arr) == 1 {
		return node.Arr[0]
	}
	return node.Arr[1]
}

// MoveDest returns the destination index of a move operation. Callers must
// Classify the node as ShapeMove first.
func MoveDest(node *value.Value) int {
	return int(node.Arr[1].Num)
}

// IndexKey renders a post-patch array index as an object-diff key, e.g. "3".
func IndexKey(i int) string {
	return strconv.Itoa(i)
}

// DeletionKey renders a pre-patch array index as an underscore-prefixed
// object-diff key, e.g. "_3".
func DeletionKey(i int) string {
	return "_" + strconv.Itoa(i)
}

// ParseArrayKey decodes an array-diff object key into its index and whether
// it denotes a deletion-side (underscore-prefixed) entry. The reserved "_t"
// key, and any key that isn't a non-negative decimal integer (optionally
// underscore-prefixed), reports ok == false.
func ParseArrayKey(key string) (index int, isDeletion bool, ok bool) {
	if key == ArrayTypeKey {
		return 0, false, false
	}
	numeric := key
	if strings.HasPrefix(key, "_") {
		isDeletion = true
		numeric = key[1:]
	}
	if numeric == "" {
		return 0, false, false
	}
	n, err := strconv.Atoi(numeric)
	if err != nil || n < 0 {
		return 0, false, false
	}
	return n, isDeletion, true
}
