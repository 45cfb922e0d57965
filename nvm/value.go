package nvm

import (
	"errors"
	"fmt"
)

// Value is a typed view over one store entry. The Go value is encoded with
// the same deterministic CBOR encoding the slot files use.
type Value[T any] struct {
	store *Store
	name  string
}

// NewValue returns a typed view over name in store.
func NewValue[T any](store *Store, name string) *Value[T] {
	return &Value[T]{store: store, name: name}
}

// Get decodes and returns the current value.
func (v *Value[T]) Get() (T, error) {
	var value T
	payload, err := v.store.Get(v.name)
	if err != nil {
		return value, err
	}
	if err := decMode.Unmarshal(payload, &value); err != nil {
		return value, fmt.Errorf("decoding value %s: %w", v.name, err)
	}
	return value, nil
}

// Set encodes and stores a new value atomically.
func (v *Value[T]) Set(value T) error {
	payload, err := encMode.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value %s: %w", v.name, err)
	}
	return v.store.Put(v.name, payload)
}

// Update reads the current value, applies f and stores the result.
// A name never stored before starts from the zero value of T.
func (v *Value[T]) Update(f func(T) T) error {
	current, err := v.Get()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return v.Set(f(current))
}
