// File: lixenwraith/maskconfig/resolver_test.go
package maskconfig

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestResolver builds a resolver over an in-memory document.
func newTestResolver(t *testing.T, doc string) *Resolver {
	t.Helper()
	return NewWithOptions(Options{
		Source: MapSource{DefaultEnvVar: doc},
	})
}

// newLoggedResolver builds a resolver whose diagnostics go to the
// returned buffer.
func newLoggedResolver(t *testing.T, src Source) (*Resolver, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log := zerolog.New(buf)
	r, err := NewBuilder().WithSource(src).WithLogger(log).Build()
	require.NoError(t, err)
	return r, buf
}

// countingSource records how many times each name was looked up.
type countingSource struct {
	mu    sync.Mutex
	inner Source
	calls map[string]int
}

func newCountingSource(inner Source) *countingSource {
	return &countingSource{inner: inner, calls: make(map[string]int)}
}

func (s *countingSource) Lookup(name string) (string, bool) {
	s.mu.Lock()
	s.calls[name]++
	s.mu.Unlock()
	return s.inner.Lookup(name)
}

func (s *countingSource) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func TestDocumentMaterialization(t *testing.T) {
	t.Run("ParsesOnceAcrossGoroutines", func(t *testing.T) {
		src := newCountingSource(MapSource{DefaultEnvVar: `{"a": 1}`})
		r := NewWithOptions(Options{Source: src})

		const workers = 16
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				_, _ = r.Int32("a")
			}()
		}
		wg.Wait()

		// One probe for the first chunk, one for the unchunked name.
		assert.Equal(t, 1, src.count(DefaultEnvVar+"_1"))
		assert.Equal(t, 1, src.count(DefaultEnvVar))

		a, ok := r.Int32("a")
		assert.True(t, ok)
		assert.Equal(t, int32(1), a)
	})

	t.Run("EmptySourceYieldsEmptyObject", func(t *testing.T) {
		r := NewWithOptions(Options{Source: MapSource{}})
		doc := r.Document()
		assert.Equal(t, KindObject, doc.Kind())
		assert.Empty(t, r.Keys())
	})

	t.Run("InvalidJSONDegradesToEmptyObject", func(t *testing.T) {
		r, buf := newLoggedResolver(t, MapSource{DefaultEnvVar: `{"a": `})

		_, ok := r.String("a")
		assert.False(t, ok)
		assert.Equal(t, KindObject, r.Document().Kind())

		// Exactly one diagnostic, no matter how many accessors run.
		_ = r.CheckBool("b")
		_, _ = r.Float64("c")
		lines := strings.Count(strings.TrimSpace(buf.String()), "\n") + 1
		assert.Equal(t, 1, lines)
		assert.Contains(t, buf.String(), "invalid JSON")
	})

	t.Run("TrailingDataIsRejected", func(t *testing.T) {
		r, buf := newLoggedResolver(t, MapSource{DefaultEnvVar: `{"a": 1} trailing`})
		_, ok := r.Int32("a")
		assert.False(t, ok)
		assert.Contains(t, buf.String(), "invalid JSON")
	})

	t.Run("NonObjectRootAnswersAbsent", func(t *testing.T) {
		r, buf := newLoggedResolver(t, MapSource{DefaultEnvVar: `[1, 2, 3]`})

		_, ok := r.String("a")
		assert.False(t, ok)
		assert.Nil(t, r.Keys())
		assert.Empty(t, r.StringList("a"))
		// A non-object root is valid JSON, so no diagnostic.
		assert.Empty(t, buf.String())
	})
}

func TestChunkedSource(t *testing.T) {
	t.Run("ChunksConcatenateInOrder", func(t *testing.T) {
		r := NewWithOptions(Options{Source: MapSource{
			DefaultEnvVar + "_1": `{"a": `,
			DefaultEnvVar + "_2": `1}`,
		}})
		a, ok := r.Int32("a")
		assert.True(t, ok)
		assert.Equal(t, int32(1), a)
	})

	t.Run("SingleChunkUsedVerbatim", func(t *testing.T) {
		r := NewWithOptions(Options{Source: MapSource{
			DefaultEnvVar + "_1": `{"a": 1}`,
		}})
		a, ok := r.Int32("a")
		assert.True(t, ok)
		assert.Equal(t, int32(1), a)
	})

	t.Run("ChunksTakePrecedenceOverUnchunked", func(t *testing.T) {
		r := NewWithOptions(Options{Source: MapSource{
			DefaultEnvVar:        `{"a": "unchunked"}`,
			DefaultEnvVar + "_1": `{"a": "chunked"}`,
		}})
		a, ok := r.String("a")
		assert.True(t, ok)
		assert.Equal(t, "chunked", a)
	})

	t.Run("ProbingStopsAtFirstGap", func(t *testing.T) {
		r := NewWithOptions(Options{Source: MapSource{
			DefaultEnvVar + "_1": `{"a": 1}`,
			DefaultEnvVar + "_3": `garbage that must not be read`,
		}})
		a, ok := r.Int32("a")
		assert.True(t, ok)
		assert.Equal(t, int32(1), a)
	})

	t.Run("EmptyChunksFallBackToUnchunked", func(t *testing.T) {
		r := NewWithOptions(Options{Source: MapSource{
			DefaultEnvVar + "_1": ``,
			DefaultEnvVar:        `{"a": 1}`,
		}})
		a, ok := r.Int32("a")
		assert.True(t, ok)
		assert.Equal(t, int32(1), a)
	})
}

func TestKeys(t *testing.T) {
	r := newTestResolver(t, `{"b": 1, "a": 2, "c": {"nested": true}}`)
	assert.Equal(t, []string{"a", "b", "c"}, r.Keys())
}

func TestCustomEnvVar(t *testing.T) {
	r, err := NewBuilder().
		WithEnvVar("APP_SETTINGS").
		WithSource(MapSource{"APP_SETTINGS": `{"a": true}`}).
		Build()
	require.NoError(t, err)
	assert.True(t, r.CheckBool("a"))
}
