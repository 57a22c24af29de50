package frontcode

import (
	"reflect"
	"sync"
)

// processorKey combines type, codec and decode strictness for cache lookup.
type processorKey struct {
	typ          reflect.Type
	contentType  string
	strictHeader bool
}

var (
	processors   = make(map[processorKey]any)
	processorsMu sync.RWMutex
)

// Use returns a cached processor or builds a new one.
// The processor is cached by type, codec content type and whether
// WithStrictHeader was given.
func Use[T Cloner[T]](codec Codec, opts ...Option) (*Processor[T], error) {
	key := processorKey{
		typ:          reflect.TypeFor[T](),
		contentType:  codec.ContentType(),
		strictHeader: buildOptions(opts).strictHeader,
	}

	// Fast path: read-lock cache check
	processorsMu.RLock()
	if cached, ok := processors[key]; ok {
		processorsMu.RUnlock()
		return cached.(*Processor[T]), nil
	}
	processorsMu.RUnlock()

	// Slow path: build and cache with write-lock
	processorsMu.Lock()
	defer processorsMu.Unlock()

	if cached, ok := processors[key]; ok {
		return cached.(*Processor[T]), nil
	}

	p, err := NewProcessor[T](codec, opts...)
	if err != nil {
		return nil, err
	}

	processors[key] = p
	return p, nil
}

// ResetProcessors clears the processor cache.
// This is primarily useful for test isolation.
func ResetProcessors() {
	processorsMu.Lock()
	defer processorsMu.Unlock()
	processors = make(map[processorKey]any)
}
