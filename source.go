// File: lixenwraith/maskconfig/source.go
package maskconfig

import (
	"os"
	"strconv"
	"strings"
)

// Source supplies named string values to the resolver. Implementations
// must be safe for concurrent use; the resolver only reads from the
// source once, during document materialization.
type Source interface {
	// Lookup returns the value for name, or false when the name is absent.
	Lookup(name string) (string, bool)
}

// EnvSource reads values from the process environment. This is the
// default source.
type EnvSource struct{}

// Lookup returns the environment variable, distinguishing "unset" from
// "set to empty".
func (EnvSource) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapSource serves values from an in-memory map. Useful for tests and
// for embedders that obtain the document some other way.
type MapSource map[string]string

func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// assemble collects the configuration text for the named variable.
// Chunked variants (name_1, name_2, ...) are probed from index 1 until
// the first missing one and concatenated in order; when that yields
// nothing, the unchunked name is used instead.
func assemble(src Source, name string) string {
	var sb strings.Builder
	for i := 1; ; i++ {
		part, ok := src.Lookup(name + "_" + strconv.Itoa(i))
		if !ok {
			break
		}
		sb.WriteString(part)
	}
	if sb.Len() > 0 {
		return sb.String()
	}
	if v, ok := src.Lookup(name); ok {
		return v
	}
	return ""
}
