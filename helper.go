// File: lixenwraith/maskconfig/helper.go
package maskconfig

import "math"

// lowerASCII lower-cases ASCII letters only, leaving every other byte
// untouched. Multi-byte UTF-8 sequences pass through unmodified.
func lowerASCII(s string) string {
	lowered := false
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			lowered = true
		}
	}
	if !lowered {
		return s
	}
	return string(b)
}

// stringMember extracts a string field from an object's member map.
func stringMember(obj map[string]Value, key string) (string, bool) {
	v, ok := obj[key]
	if !ok {
		return "", false
	}
	return v.Str()
}

// boolMember extracts a boolean field from an object's member map.
func boolMember(obj map[string]Value, key string) (bool, bool) {
	v, ok := obj[key]
	if !ok {
		return false, false
	}
	return v.Bool()
}

// int32Member extracts an integer field, rejecting values outside the
// int32 range.
func int32Member(obj map[string]Value, key string) (int32, bool) {
	v, ok := obj[key]
	if !ok {
		return 0, false
	}
	i, ok := v.Int64()
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, false
	}
	return int32(i), true
}
