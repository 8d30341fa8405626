// File: lixenwraith/maskconfig/builder.go
package maskconfig

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Builder provides a fluent interface for constructing resolvers.
type Builder struct {
	opts Options
	err  error
}

// NewBuilder creates a new resolver builder with default options.
func NewBuilder() *Builder {
	return &Builder{opts: DefaultOptions()}
}

// WithEnvVar sets the base name of the configuration variable.
func (b *Builder) WithEnvVar(name string) *Builder {
	if name == "" {
		b.err = errors.New("environment variable name cannot be empty")
		return b
	}
	b.opts.EnvVar = name
	return b
}

// WithSource sets the value source the document is read from.
func (b *Builder) WithSource(src Source) *Builder {
	b.opts.Source = src
	return b
}

// WithLogger sets the diagnostic logger.
func (b *Builder) WithLogger(log zerolog.Logger) *Builder {
	b.opts.Logger = &log
	return b
}

// Build creates the resolver with all specified options. The document
// itself is not read until first access.
func (b *Builder) Build() (*Resolver, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewWithOptions(b.opts), nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Resolver {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("resolver build failed: %v", err))
	}
	return r
}
