package frame

import (
	"strconv"
)

// Kind enumerates the scalar types a cell can hold.
type Kind int

const (
	KindNA Kind = iota
	KindFloat
	KindInt
	KindString
	KindBool
)

// Value is a single cell: a typed scalar or the missing marker NA.
// The zero Value is NA.
type Value struct {
	kind Kind
	f    float64
	i    int64
	s    string
	b    bool
}

func NA() Value             { return Value{} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func Int(i int64) Value     { return Value{kind: KindInt, i: i} }
func String(s string) Value { return Value{kind: KindString, s: s} }
func Bool(b bool) Value     { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNA() bool { return v.kind == KindNA }

// Float returns the cell as a float64. Integer cells are widened; anything
// else reports false.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Equal reports value equality. Numeric cells compare across int and float
// kinds so a key of 1 matches a key of 1.0.
func (v Value) Equal(o Value) bool {
	if v.kind == KindNA || o.kind == KindNA {
		return false
	}
	vf, vn := v.Float()
	of, on := o.Float()
	if vn && on {
		return vf == of
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindBool:
		return v.b == o.b
	}
	return false
}

// String renders the cell for display and CSV output. NA renders empty.
func (v Value) String() string {
	switch v.kind {
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// hashKey is a stable map key for join/index matching. Numeric kinds share
// one namespace so Equal and hashKey agree.
func (v Value) hashKey() string {
	if f, ok := v.Float(); ok {
		return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
	}
	switch v.kind {
	case KindString:
		return "s:" + v.s
	case KindBool:
		return "b:" + strconv.FormatBool(v.b)
	}
	return "na"
}
