// File: lixenwraith/maskconfig/scalar.go
package maskconfig

import "math"

// String returns the string at a flat key.
func (r *Resolver) String(key string) (string, bool) {
	v, ok := r.member(key)
	if !ok {
		return "", false
	}
	return v.Str()
}

// Bool returns the boolean at a flat key. Only a JSON boolean matches;
// there is no truthy coercion from numbers or strings.
func (r *Resolver) Bool(key string) (bool, bool) {
	v, ok := r.member(key)
	if !ok {
		return false, false
	}
	return v.Bool()
}

// CheckBool is the feature-flag read: the boolean at key, or false on
// any absence or mismatch.
func (r *Resolver) CheckBool(key string) bool {
	b, ok := r.Bool(key)
	return ok && b
}

// Uint64 returns the unsigned integer at a flat key. Negative values
// are rejected.
func (r *Resolver) Uint64(key string) (uint64, bool) {
	v, ok := r.member(key)
	if !ok {
		return 0, false
	}
	return v.Uint64()
}

// Uint32 returns the unsigned integer at a flat key, rejecting values
// above the uint32 maximum.
func (r *Resolver) Uint32(key string) (uint32, bool) {
	u, ok := r.Uint64(key)
	if !ok || u > math.MaxUint32 {
		return 0, false
	}
	return uint32(u), true
}

// Int32 returns the signed integer at a flat key, rejecting values
// outside the int32 range.
func (r *Resolver) Int32(key string) (int32, bool) {
	v, ok := r.member(key)
	if !ok {
		return 0, false
	}
	i, ok := v.Int64()
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, false
	}
	return int32(i), true
}

// Float64 returns the number at a flat key as a double, widening
// integers when necessary.
func (r *Resolver) Float64(key string) (float64, bool) {
	v, ok := r.member(key)
	if !ok {
		return 0, false
	}
	return v.Float64()
}

// StringList returns the strings in the array at a flat key. Non-string
// elements are skipped rather than failing the whole list. A missing
// key or non-array value yields an empty list.
func (r *Resolver) StringList(key string) []string {
	v, ok := r.member(key)
	if !ok {
		return nil
	}
	arr, ok := v.Array()
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.Str(); ok {
			out = append(out, s)
		}
	}
	return out
}
