// File: lixenwraith/maskconfig/convenience.go
package maskconfig

import "sync"

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the process-wide resolver bound to DefaultEnvVar,
// creating it on first use. It lives for the process lifetime and is
// never torn down.
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = New()
	})
	return defaultResolver
}

// String reads a string from the default resolver.
func String(key string) (string, bool) {
	return Default().String(key)
}

// Bool reads a boolean from the default resolver.
func Bool(key string) (bool, bool) {
	return Default().Bool(key)
}

// CheckBool reads a feature flag from the default resolver, false on
// any absence or mismatch.
func CheckBool(key string) bool {
	return Default().CheckBool(key)
}

// StringListLower reads a cached lower-cased string list from the
// default resolver.
func StringListLower(key string) []string {
	return Default().StringListLower(key)
}
