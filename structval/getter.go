package structval

import "strconv"

// Result reports the outcome of a typed lookup.
type Result uint8

// Lookup outcomes.
const (
	// Found means the member exists and has the requested type.
	Found Result = iota
	// Missing means the document has no such member.
	Missing
	// WrongType means the member exists but holds a different type.
	WrongType
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case Found:
		return "found"
	case Missing:
		return "missing"
	case WrongType:
		return "wrong type"
	default:
		return "result(" + strconv.Itoa(int(r)) + ")"
	}
}

// Getter reads typed members out of an object node. The zero Getter, and a
// Getter over a non object node, report Missing for every key.
type Getter struct {
	v *Value
}

// NewGetter returns a Getter over v.
func NewGetter(v *Value) Getter {
	return Getter{v: v}
}

// Value returns the node the Getter reads from.
func (g Getter) Value() *Value {
	return g.v
}

// GetValue returns the named member without a type check.
func (g Getter) GetValue(key string) (*Value, Result) {
	if g.v == nil || g.v.kind != KindObject {
		return nil, Missing
	}
	f, ok := g.v.field[key]
	if !ok {
		return nil, Missing
	}
	return f, Found
}

// GetString returns the named member as a string.
func (g Getter) GetString(key string) (string, Result) {
	f, res := g.GetValue(key)
	if res != Found {
		return "", res
	}
	if f.Kind() != KindString {
		return "", WrongType
	}
	return f.str, Found
}

// GetBool returns the named member as a boolean.
func (g Getter) GetBool(key string) (bool, Result) {
	f, res := g.GetValue(key)
	if res != Found {
		return false, res
	}
	if f.Kind() != KindBool {
		return false, WrongType
	}
	return f.boolv, Found
}

// GetUInt64 returns the named member as an unsigned integer. Numbers that
// are negative, fractional or do not fit in 64 bits report WrongType.
func (g Getter) GetUInt64(key string) (uint64, Result) {
	f, res := g.GetValue(key)
	if res != Found {
		return 0, res
	}
	u, ok := f.uint64Val()
	if !ok {
		return 0, WrongType
	}
	return u, Found
}

// GetDouble returns the named member as a float64.
func (g Getter) GetDouble(key string) (float64, Result) {
	f, res := g.GetValue(key)
	if res != Found {
		return 0, res
	}
	d, ok := f.float64Val()
	if !ok {
		return 0, WrongType
	}
	return d, Found
}

// GetStringList returns the named member as a list of strings. A single
// string is returned as a one element list; a list with any non string
// element reports WrongType.
func (g Getter) GetStringList(key string) ([]string, Result) {
	f, res := g.GetValue(key)
	if res != Found {
		return nil, res
	}
	switch f.Kind() {
	case KindString:
		return []string{f.str}, Found
	case KindList:
		out := make([]string, 0, len(f.list))
		for _, el := range f.list {
			if el.Kind() != KindString {
				return nil, WrongType
			}
			out = append(out, el.str)
		}
		return out, Found
	default:
		return nil, WrongType
	}
}

// GetStruct returns a Getter over the named nested object.
func (g Getter) GetStruct(key string) (Getter, Result) {
	f, res := g.GetValue(key)
	if res != Found {
		return Getter{}, res
	}
	if f.Kind() != KindObject {
		return Getter{}, WrongType
	}
	return Getter{v: f}, Found
}
