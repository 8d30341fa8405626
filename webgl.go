// File: lixenwraith/maskconfig/webgl.go
package maskconfig

import (
	"math"
	"strconv"
)

// Nested domain keys for the two WebGL namespaces.
const (
	domainAttributes     = "webGl:contextAttributes"
	domainAttributesGL2  = "webGl2:contextAttributes"
	domainParameters     = "webGl:parameters"
	domainParametersGL2  = "webGl2:parameters"
	domainShaderFormats  = "webGl:shaderPrecisionFormats"
	domainShaderFormats2 = "webGl2:shaderPrecisionFormats"
)

func attributesDomain(webgl2 bool) string {
	if webgl2 {
		return domainAttributesGL2
	}
	return domainAttributes
}

func parametersDomain(webgl2 bool) string {
	if webgl2 {
		return domainParametersGL2
	}
	return domainParameters
}

func shaderFormatsDomain(webgl2 bool) string {
	if webgl2 {
		return domainShaderFormats2
	}
	return domainShaderFormats
}

// Scalar is the closed set of types the typed WebGL getters can produce.
type Scalar interface {
	bool | int32 | int64 | uint32 | uint64 | float32 | float64 | string
}

// scalarFrom converts a document value to T with the same kind and
// range rules as the flat scalar accessors.
func scalarFrom[T Scalar](v Value) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case bool:
		b, ok := v.Bool()
		if !ok {
			return zero, false
		}
		return any(b).(T), true
	case int32:
		i, ok := v.Int64()
		if !ok || i < math.MinInt32 || i > math.MaxInt32 {
			return zero, false
		}
		return any(int32(i)).(T), true
	case int64:
		i, ok := v.Int64()
		if !ok {
			return zero, false
		}
		return any(i).(T), true
	case uint32:
		u, ok := v.Uint64()
		if !ok || u > math.MaxUint32 {
			return zero, false
		}
		return any(uint32(u)).(T), true
	case uint64:
		u, ok := v.Uint64()
		if !ok {
			return zero, false
		}
		return any(u).(T), true
	case float32:
		f, ok := v.Float64()
		if !ok {
			return zero, false
		}
		return any(float32(f)).(T), true
	case float64:
		f, ok := v.Float64()
		if !ok {
			return zero, false
		}
		return any(f).(T), true
	case string:
		s, ok := v.Str()
		if !ok {
			return zero, false
		}
		return any(s).(T), true
	}
	return zero, false
}

// Attribute reads a typed WebGL context attribute from the
// "webGl:contextAttributes" namespace (or the webGl2 one).
func Attribute[T Scalar](r *Resolver, name string, webgl2 bool) (T, bool) {
	v, ok := r.Nested(attributesDomain(webgl2), name)
	if !ok {
		var zero T
		return zero, false
	}
	return scalarFrom[T](v)
}

// GLKind tags the active member of a GLValue.
type GLKind uint8

const (
	GLNull GLKind = iota
	GLString
	GLDouble
	GLInt64
	GLBool
)

// GLValue is a tagged union over the JSON kinds a WebGL parameter may
// hold. Exactly one member, selected by Kind, is meaningful.
type GLValue struct {
	Kind   GLKind
	Str    string
	Double float64
	Int    int64
	Bool   bool
}

// Param reads a WebGL parameter of statically unknown type, keyed by
// the decimal form of its id. Kinds are matched in a fixed precedence
// order: null, string, double, integer, boolean. The double arm accepts
// any JSON number, so ambiguous representations resolve numerically.
func (r *Resolver) Param(pname uint32, webgl2 bool) (GLValue, bool) {
	v, ok := r.Nested(parametersDomain(webgl2), strconv.FormatUint(uint64(pname), 10))
	if !ok {
		return GLValue{}, false
	}

	if v.IsNull() {
		return GLValue{Kind: GLNull}, true
	}
	if s, ok := v.Str(); ok {
		return GLValue{Kind: GLString, Str: s}, true
	}
	if f, ok := v.Float64(); ok {
		return GLValue{Kind: GLDouble, Double: f}, true
	}
	if i, ok := v.Int64(); ok {
		return GLValue{Kind: GLInt64, Int: i}, true
	}
	if b, ok := v.Bool(); ok {
		return GLValue{Kind: GLBool, Bool: b}, true
	}
	return GLValue{}, false
}

// ParamOr reads a typed WebGL parameter, returning def when the
// parameter is absent, of the wrong kind, or out of range.
func ParamOr[T Scalar](r *Resolver, pname uint32, def T, webgl2 bool) T {
	v, ok := r.Nested(parametersDomain(webgl2), strconv.FormatUint(uint64(pname), 10))
	if !ok {
		return def
	}
	out, ok := scalarFrom[T](v)
	if !ok {
		return def
	}
	return out
}

// ParamVector reads a homogeneous array parameter. The conversion is
// all-or-nothing: when the value is not an array, or any single element
// fails to convert, the partial result is discarded and def returned.
func ParamVector[T Scalar](r *Resolver, pname uint32, def []T, webgl2 bool) []T {
	v, ok := r.Nested(parametersDomain(webgl2), strconv.FormatUint(uint64(pname), 10))
	if !ok {
		return def
	}
	arr, ok := v.Array()
	if !ok {
		return def
	}
	out := make([]T, 0, len(arr))
	for _, el := range arr {
		t, ok := scalarFrom[T](el)
		if !ok {
			return def
		}
		out = append(out, t)
	}
	return out
}

// ShaderPrecision describes one shader precision format.
type ShaderPrecision struct {
	RangeMin  int32
	RangeMax  int32
	Precision int32
}

// ShaderPrecision reads the precision descriptor keyed by
// "<shaderType>,<precisionType>". All three fields must be present,
// integral, and within the int32 range; otherwise the whole triple is
// absent.
func (r *Resolver) ShaderPrecision(shaderType, precisionType uint32, webgl2 bool) (ShaderPrecision, bool) {
	key := strconv.FormatUint(uint64(shaderType), 10) + "," +
		strconv.FormatUint(uint64(precisionType), 10)

	v, ok := r.Nested(shaderFormatsDomain(webgl2), key)
	if !ok {
		return ShaderPrecision{}, false
	}
	obj, ok := v.Object()
	if !ok {
		return ShaderPrecision{}, false
	}

	rangeMin, ok := int32Member(obj, "rangeMin")
	if !ok {
		return ShaderPrecision{}, false
	}
	rangeMax, ok := int32Member(obj, "rangeMax")
	if !ok {
		return ShaderPrecision{}, false
	}
	precision, ok := int32Member(obj, "precision")
	if !ok {
		return ShaderPrecision{}, false
	}

	return ShaderPrecision{RangeMin: rangeMin, RangeMax: rangeMax, Precision: precision}, true
}
