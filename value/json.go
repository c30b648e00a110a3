package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pfrederiksen/jsondiffpatch/errs"
	"github.com/pfrederiksen/jsondiffpatch/internal/arena"
)

// Parse decodes data into a Value tree. It is built on encoding/json's token
// stream rather than a hand-rolled tokenizer, but it preserves object key
// insertion order (which json.Unmarshal into a Go map does not), since the
// wire format's ordering guarantees depend on it.
func Parse(data []byte, a *arena.Arena) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec, a)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrParse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after top-level value", errs.ErrParse)
	}
	return v, nil
}

func parseValue(dec *json.Decoder, a *arena.Arena) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseToken(dec, tok, a)
}

func parseToken(dec *json.Decoder, tok json.Token, a *arena.Arena) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObjectMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				child, err := parseValue(dec, a)
				if err != nil {
					return nil, err
				}
				obj.Set(key, child)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return NewObjectValue(obj, a)

		case '[':
			var elems []*Value
			for dec.More() {
				child, err := parseValue(dec, a)
				if err != nil {
					return nil, err
				}
				elems = append(elems, child)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return NewArray(elems, a)

		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}

	case nil:
		return NewNull(a)

	case bool:
		return NewBool(t, a)

	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return nil, err
		}
		return NewNumber(f, a)

	case string:
		return NewString(t, a)

	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// MarshalJSON renders v as JSON, preserving object key insertion order.
// A nil *Value marshals to the JSON literal null.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}

	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindTrue:
		return []byte("true"), nil
	case KindFalse:
		return []byte("false"), nil
	case KindNumber:
		return json.Marshal(v.Num)
	case KindString:
		return json.Marshal(v.Str)

	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range v.Arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil

	case KindObject:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range v.Obj.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			child, _ := v.Obj.Get(k)
			vb, err := child.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(vb)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil

	default:
		return nil, errs.ErrInvalidDiffShape
	}
}

// UnmarshalJSON decodes data into v in place, preserving object key order.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data, nil)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}
