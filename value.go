// File: lixenwraith/maskconfig/value.go
package maskconfig

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the JSON type held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt  // signed 64-bit integer
	KindUint // unsigned 64-bit integer outside the int64 range
	KindFloat
	KindString
	KindArray
	KindObject
)

// Value is one immutable node of the parsed configuration document.
// The zero Value has KindNull and answers every typed extraction
// negatively, so lookups can return it for missing keys.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

// Kind returns the JSON kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string payload.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Bool returns the boolean payload. Numbers are never coerced to booleans.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Int64 returns the value as a signed 64-bit integer. An unsigned value
// converts only when it fits; floating-point values never convert.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindUint:
		if v.u <= math.MaxInt64 {
			return int64(v.u), true
		}
	}
	return 0, false
}

// Uint64 returns the value as an unsigned 64-bit integer. A signed value
// converts only when non-negative; floating-point values never convert.
func (v Value) Uint64() (uint64, bool) {
	switch v.kind {
	case KindUint:
		return v.u, true
	case KindInt:
		if v.i >= 0 {
			return uint64(v.i), true
		}
	}
	return 0, false
}

// Float64 returns the value as a double, silently widening either
// integer kind. This is the numeric-kind-agnostic read.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	case KindUint:
		return float64(v.u), true
	}
	return 0, false
}

// Array returns the element slice of an array value.
func (v Value) Array() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// Object returns the member map of an object value.
func (v Value) Object() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Member returns the named member of an object value.
func (v Value) Member(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	out, ok := v.obj[key]
	return out, ok
}

// Interface converts the value tree back to plain Go types
// (nil, bool, int64, uint64, float64, string, []any, map[string]any).
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindUint:
		return v.u
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, el := range v.arr {
			out[i] = el.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, el := range v.obj {
			out[k] = el.Interface()
		}
		return out
	default:
		return nil
	}
}

// emptyObject returns the document used when no input exists or parsing fails.
func emptyObject() Value {
	return Value{kind: KindObject, obj: map[string]Value{}}
}

// parseDocument parses a complete JSON text into a Value tree. Numbers
// keep their lexical kind: integers that fit int64 become KindInt,
// larger non-negative integers become KindUint, everything else KindFloat.
func parseDocument(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}
	// The whole text must be a single JSON value.
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, errors.New("trailing data after JSON document")
	}
	return valueOf(raw), nil
}

func valueOf(raw any) Value {
	switch v := raw.(type) {
	case bool:
		return Value{kind: KindBool, b: v}
	case json.Number:
		return numberValue(v)
	case string:
		return Value{kind: KindString, s: v}
	case []any:
		arr := make([]Value, len(v))
		for i, el := range v {
			arr[i] = valueOf(el)
		}
		return Value{kind: KindArray, arr: arr}
	case map[string]any:
		obj := make(map[string]Value, len(v))
		for k, el := range v {
			obj[k] = valueOf(el)
		}
		return Value{kind: KindObject, obj: obj}
	default:
		return Value{kind: KindNull}
	}
}

func numberValue(n json.Number) Value {
	lit := n.String()
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return Value{kind: KindInt, i: i}
	}
	if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
		return Value{kind: KindUint, u: u}
	}
	f, err := n.Float64()
	if err != nil {
		return Value{kind: KindNull}
	}
	return Value{kind: KindFloat, f: f}
}
