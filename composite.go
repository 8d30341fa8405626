// File: lixenwraith/maskconfig/composite.go
package maskconfig

import "math"

// Rect is an unsigned screen rectangle assembled from four flat keys.
type Rect struct {
	Left   uint32
	Top    uint32
	Width  uint32
	Height uint32
}

// Int32Rect is the signed variant of Rect.
type Int32Rect struct {
	Left   int32
	Top    int32
	Width  int32
	Height int32
}

// Rect assembles a rectangle from four independently-read unsigned keys.
// Left and top default to 0 when absent. Width and height must be
// provided as a pair: if exactly one of them is present, a diagnostic is
// logged and the whole rectangle is absent; if neither is present the
// rectangle is silently absent.
func (r *Resolver) Rect(leftKey, topKey, widthKey, heightKey string) (Rect, bool) {
	left, _ := r.Uint32(leftKey)
	top, _ := r.Uint32(topKey)
	width, widthOK := r.Uint32(widthKey)
	height, heightOK := r.Uint32(heightKey)

	if !widthOK || !heightOK {
		if widthOK != heightOK {
			r.log.Warn().Str("width", widthKey).Str("height", heightKey).
				Msg("both width and height must be provided, using default behavior")
		}
		return Rect{}, false
	}

	return Rect{Left: left, Top: top, Width: width, Height: height}, true
}

// Int32Rect assembles a rectangle like Rect, then re-validates that all
// four fields fit in int32. Any overflow rejects the whole rectangle.
func (r *Resolver) Int32Rect(leftKey, topKey, widthKey, heightKey string) (Int32Rect, bool) {
	rect, ok := r.Rect(leftKey, topKey, widthKey, heightKey)
	if !ok {
		return Int32Rect{}, false
	}
	for _, field := range [4]uint32{rect.Left, rect.Top, rect.Width, rect.Height} {
		if field > math.MaxInt32 {
			return Int32Rect{}, false
		}
	}
	return Int32Rect{
		Left:   int32(rect.Left),
		Top:    int32(rect.Top),
		Width:  int32(rect.Width),
		Height: int32(rect.Height),
	}, true
}

// Nested resolves a two-level (domain, key) path: the domain must be an
// object directly under the root, and key is looked up inside it. Any
// failed hop yields absence.
func (r *Resolver) Nested(domain, key string) (Value, bool) {
	v, ok := r.member(domain)
	if !ok {
		return Value{}, false
	}
	obj, ok := v.Object()
	if !ok {
		return Value{}, false
	}
	out, ok := obj[key]
	return out, ok
}
