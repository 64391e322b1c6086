// Package persist mirrors one in-memory value to a named durable slot.
package persist

import (
	"encoding/json"
	"fmt"
	"sync"

	"pilealire/internal/logger"
)

// KV is the durable slot storage a Binding writes through to.
type KV interface {
	GetSlot(key string) (string, bool, error)
	PutSlot(key, value string) error
}

// Binding keeps the slot named key synchronized with a value of type T.
// The cached copy is kept encoded so every Get hands out an independent value.
type Binding[T any] struct {
	kv    KV
	key   string
	def   T
	check func(T) error

	mu     sync.Mutex
	loaded bool
	cached []byte
}

// Option configures a Binding.
type Option[T any] func(*Binding[T])

// WithCheck rejects stored values that decode but fail fn; they are treated
// like undecodable content.
func WithCheck[T any](fn func(T) error) Option[T] {
	return func(b *Binding[T]) {
		b.check = fn
	}
}

func Bind[T any](kv KV, key string, def T, opts ...Option[T]) *Binding[T] {
	b := &Binding[T]{kv: kv, key: key, def: def}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Binding[T]) Key() string {
	return b.key
}

// Init loads the slot, seeding it with the default when it is absent.
func (b *Binding[T]) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.load()
	return err
}

// Get returns the slot content. The first access on an empty slot stores and
// returns the default; undecodable content also yields the default.
func (b *Binding[T]) Get() (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.load()
}

// Set overwrites the slot. Later Gets observe v.
func (b *Binding[T]) Set(v T) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.store(v)
}

// Update applies fn to the current value and stores the result. Nothing is
// written when fn fails.
func (b *Binding[T]) Update(fn func(*T) error) (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	v, err := b.load()
	if err != nil {
		var zero T
		return zero, err
	}
	if err := fn(&v); err != nil {
		var zero T
		return zero, err
	}
	if err := b.store(v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Reset writes the default back into the slot.
func (b *Binding[T]) Reset() (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.store(b.def); err != nil {
		var zero T
		return zero, err
	}
	return b.decode(b.cached)
}

func (b *Binding[T]) load() (T, error) {
	if b.loaded {
		return b.decode(b.cached)
	}

	raw, ok, err := b.kv.GetSlot(b.key)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("read slot %q: %w", b.key, err)
	}
	if !ok {
		logger.LogMsg(logger.LogInfo, "Slot %q is empty, seeding it with the default value", b.key)
		if err := b.store(b.def); err != nil {
			var zero T
			return zero, err
		}
		return b.decode(b.cached)
	}

	v, err := b.decode([]byte(raw))
	if err == nil && b.check != nil {
		err = b.check(v)
	}
	if err != nil {
		// The corrupt bytes stay in the slot until the next Set.
		logger.LogMsg(logger.LogWarning, "Slot %q holds undecodable content, using the default: %v", b.key, err)
		return b.fallback()
	}
	b.cached = []byte(raw)
	b.loaded = true
	return v, nil
}

func (b *Binding[T]) fallback() (T, error) {
	encoded, err := json.Marshal(b.def)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("encode default for slot %q: %w", b.key, err)
	}
	b.cached = encoded
	b.loaded = true
	return b.decode(encoded)
}

func (b *Binding[T]) store(v T) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", b.key, err)
	}
	if err := b.kv.PutSlot(b.key, string(encoded)); err != nil {
		return fmt.Errorf("write slot %q: %w", b.key, err)
	}
	b.cached = encoded
	b.loaded = true
	return nil
}

func (b *Binding[T]) decode(raw []byte) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, err
	}
	return v, nil
}
