// File: lixenwraith/maskconfig/doc.go

// Package maskconfig resolves typed runtime configuration out of a
// single JSON document supplied through environment-style variables.
// It is built for call sites that must never fail: every accessor
// returns either a fully range-checked value of the requested type or
// an explicit "absent" result, so callers need no error handling of
// their own.
//
// Features:
//   - Once-only, thread-safe document materialization from chunked
//     (NAME_1, NAME_2, ...) or unchunked environment variables
//   - Typed scalar getters with strict kind and overflow checks
//   - Composite getters: rectangles, nested per-domain parameters,
//     tagged WebGL parameter unions, shader precision triples, voice
//     descriptor lists
//   - Read-through cache for lower-cased string lists
//   - Struct decoding of document sections via mapstructure
//
// Quick Start:
//
//	// MASK_CONFIG={"userAgent":"x","screen.width":1920,"screen.height":1080}
//	r := maskconfig.New()
//
//	ua, ok := r.String("userAgent")
//	rect, ok := r.Rect("screen.left", "screen.top", "screen.width", "screen.height")
//	if maskconfig.CheckBool("audio.enabled") { ... }
//
// Failure Model:
// A malformed top-level document is reported once to the diagnostic
// logger and degrades to an empty object; from then on every lookup is
// simply absent. Missing keys, kind mismatches, and numeric overflow
// are silent. No accessor panics, throws, or returns an error.
//
// Thread Safety:
// The document is parsed exactly once under a sync.Once guard and never
// mutated afterwards, so concurrent reads need no locking. The list
// cache uses a read-write mutex with first-writer-wins insertion.
package maskconfig
