// File: lixenwraith/maskconfig/resolver.go
package maskconfig

import (
	"os"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// DefaultEnvVar is the variable the default resolver reads the
// configuration document from.
const DefaultEnvVar = "MASK_CONFIG"

// Options configures a Resolver.
type Options struct {
	// EnvVar is the base name of the variable holding the JSON document.
	// Chunked variants (EnvVar_1, EnvVar_2, ...) take precedence over the
	// unchunked name when any of them is set.
	EnvVar string

	// Source supplies named values. Defaults to the process environment.
	Source Source

	// Logger receives the resolver's diagnostics. Defaults to a
	// timestamped stderr logger.
	Logger *zerolog.Logger
}

// DefaultOptions returns the standard resolver options.
func DefaultOptions() Options {
	return Options{
		EnvVar: DefaultEnvVar,
		Source: EnvSource{},
	}
}

// Resolver answers typed queries against a single JSON configuration
// document. The document is materialized from the source exactly once,
// on first access, and is immutable afterwards, so any number of
// goroutines may query concurrently without further coordination.
//
// Every accessor degrades to an "absent" result (ok == false, or a
// caller-supplied default) on missing keys, kind mismatches, and numeric
// overflow. No accessor ever panics or returns an error.
type Resolver struct {
	opts Options
	log  zerolog.Logger

	once sync.Once
	root Value

	cache *listCache
}

// New creates a resolver with default options.
func New() *Resolver {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a resolver with custom options. Zero fields
// fall back to their defaults.
func NewWithOptions(opts Options) *Resolver {
	if opts.EnvVar == "" {
		opts.EnvVar = DefaultEnvVar
	}
	if opts.Source == nil {
		opts.Source = EnvSource{}
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Resolver{
		opts:  opts,
		log:   log,
		cache: newListCache(),
	}
}

// Document returns the parsed configuration document, materializing it
// on the first call. Concurrent first callers block until the single
// load completes and then all observe the same immutable value.
func (r *Resolver) Document() Value {
	r.once.Do(r.load)
	return r.root
}

func (r *Resolver) load() {
	text := assemble(r.opts.Source, r.opts.EnvVar)
	if text == "" {
		text = "{}"
	}

	root, err := parseDocument(text)
	if err != nil {
		r.log.Error().Err(err).Str("var", r.opts.EnvVar).
			Msg("invalid JSON in configuration variable")
		root = emptyObject()
	}
	r.root = root
}

// object returns the root object of the document. A valid non-object
// root (for example a top-level array) yields false, which makes every
// keyed accessor report absence.
func (r *Resolver) object() (map[string]Value, bool) {
	return r.Document().Object()
}

// member returns the value at a flat key directly under the root object.
func (r *Resolver) member(key string) (Value, bool) {
	obj, ok := r.object()
	if !ok {
		return Value{}, false
	}
	v, ok := obj[key]
	return v, ok
}

// Keys returns the sorted top-level keys of the document.
func (r *Resolver) Keys() []string {
	obj, ok := r.object()
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
