// Package structval provides an order preserving document tree for parsed
// JSON, and a typed accessor to read values out of it.
//
// The tree keeps exactly what the document said: object members stay in
// declaration order, and numbers keep their original decimal text, so
// integers outside the float64 range survive a round trip.
package structval

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Kind identifies the JSON type stored in a Value.
type Kind uint8

// Kinds of values in a document tree.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a single node of a parsed document. A Value holds one of the six
// JSON kinds; use Kind to find out which before reading it.
type Value struct {
	kind  Kind
	boolv bool
	num   json.Number
	str   string
	list  []*Value
	keys  []string
	field map[string]*Value
}

// Null returns the JSON null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, boolv: b}
}

// Number returns a numeric value keeping the exact decimal text of n.
func Number(n json.Number) *Value {
	return &Value{kind: KindNumber, num: n}
}

// String returns a string value.
func String(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// List returns a list value with the given elements.
func List(elems ...*Value) *Value {
	return &Value{kind: KindList, list: elems}
}

// Object returns an empty object value. Use Set to add members.
func Object() *Value {
	return &Value{kind: KindObject, field: map[string]*Value{}}
}

// Set adds or replaces an object member, keeping the first insertion order.
// It is a no-op on non objects.
func (v *Value) Set(key string, val *Value) *Value {
	if v == nil || v.kind != KindObject {
		return v
	}
	if v.field == nil {
		v.field = map[string]*Value{}
	}
	if _, ok := v.field[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.field[key] = val
	return v
}

// Parse decodes a JSON document into a Value tree. The input must hold a
// single document; objects with duplicate member names are rejected.
func Parse(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("empty document")
		}
		return nil, errors.WithStack(err)
	}
	v, err := parseValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after document")
	}
	return v, nil
}

func parseValue(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseList(dec)
		}
		return nil, errors.Errorf("unexpected delimiter: %v", t)
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case nil:
		return Null(), nil
	}
	return nil, errors.Errorf("unsupported token: %T", tok)
}

func parseObject(dec *json.Decoder) (*Value, error) {
	obj := Object()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.Errorf("unexpected object key: %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		val, err := parseValue(dec, valTok)
		if err != nil {
			return nil, err
		}
		if _, exists := obj.field[key]; exists {
			return nil, errors.Errorf("duplicate member: %q", key)
		}
		obj.Set(key, val)
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, errors.WithStack(err)
	}
	return obj, nil
}

func parseList(dec *json.Decoder) (*Value, error) {
	l := &Value{kind: KindList}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		el, err := parseValue(dec, tok)
		if err != nil {
			return nil, err
		}
		l.list = append(l.list, el)
	}
	// consume the closing bracket
	if _, err := dec.Token(); err != nil {
		return nil, errors.WithStack(err)
	}
	return l, nil
}

// Kind returns the node kind. A nil Value reports KindNull.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// Len returns the number of list elements or object members, and 0 for
// every other kind.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindObject:
		return len(v.keys)
	}
	return 0
}

// Index returns the i-th list element, or nil when out of range.
func (v *Value) Index(i int) *Value {
	if v == nil || v.kind != KindList || i < 0 || i >= len(v.list) {
		return nil
	}
	return v.list[i]
}

// Field returns the named object member.
func (v *Value) Field(key string) (*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	f, ok := v.field[key]
	return f, ok
}

// Keys returns the object member names in document order.
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindObject {
		return nil
	}
	return append([]string(nil), v.keys...)
}

// Interface converts the tree to untyped Go values: nil, bool, json.Number,
// string, []any and map[string]any. Object member order is not preserved;
// use MarshalJSON when the order matters.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindBool:
		return v.boolv
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindList:
		out := make([]any, len(v.list))
		for i, el := range v.list {
			out[i] = el.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.keys))
		for k, f := range v.field {
			out[k] = f.Interface()
		}
		return out
	}
	return nil
}

// 1<<64 as float64, the first value too large for uint64
const twoPow64 = float64(1<<63) * 2

// uint64Val reports the numeric value as uint64 when it denotes a non
// negative integer that fits, including exponent forms such as 1e3.
func (v *Value) uint64Val() (uint64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if u, err := strconv.ParseUint(v.num.String(), 10, 64); err == nil {
		return u, true
	}
	f, err := v.num.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < 0 || f != math.Trunc(f) || f >= twoPow64 {
		return 0, false
	}
	return uint64(f), true
}

func (v *Value) float64Val() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := v.num.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// MarshalJSON renders the tree back to JSON, keeping object member order.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) encode(buf *bytes.Buffer) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.boolv))
	case KindNumber:
		if v.num == "" {
			buf.WriteByte('0')
		} else {
			buf.WriteString(v.num.String())
		}
	case KindString:
		return encodeString(buf, v.str)
	case KindList:
		buf.WriteByte('[')
		for i, el := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := el.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := v.field[k].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return errors.WithStack(err)
	}
	buf.Write(b)
	return nil
}

// String renders the tree as compact JSON.
func (v *Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}

// Clone returns a deep copy sharing no state with the receiver.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := &Value{kind: v.kind, boolv: v.boolv, num: v.num, str: v.str}
	if v.list != nil {
		c.list = make([]*Value, len(v.list))
		for i, el := range v.list {
			c.list[i] = el.Clone()
		}
	}
	if v.field != nil {
		c.keys = append([]string(nil), v.keys...)
		c.field = make(map[string]*Value, len(v.field))
		for k, f := range v.field {
			c.field[k] = f.Clone()
		}
	}
	return c
}

// Equal reports structural equality. Object member order does not matter,
// list order does. Numbers compare by decimal text first, then by value
// when the texts differ.
func (v *Value) Equal(o *Value) bool {
	if v.Kind() != o.Kind() {
		return false
	}
	if v == nil || o == nil {
		// both report KindNull
		return true
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolv == o.boolv
	case KindNumber:
		if v.num == o.num {
			return true
		}
		vf, verr := v.num.Float64()
		of, oerr := o.num.Float64()
		return verr == nil && oerr == nil && vf == of
	case KindString:
		return v.str == o.str
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.keys) != len(o.keys) {
			return false
		}
		for k, f := range v.field {
			of, ok := o.field[k]
			if !ok || !f.Equal(of) {
				return false
			}
		}
		return true
	}
	return false
}
