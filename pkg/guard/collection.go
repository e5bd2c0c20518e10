package guard

import (
	"slices"
)

func MinItems[T any](field string, value []T, min int) ([]T, error) {
	if len(value) < min {
		return value, newError(field, ErrInvalidLength, "must have at least %d items", min)
	}
	return value, nil
}

func MaxItems[T any](field string, value []T, max int) ([]T, error) {
	if len(value) > max {
		return value, newError(field, ErrInvalidLength, "must have at most %d items", max)
	}
	return value, nil
}

// HasKey returns the value stored under key, or fails when m does not contain it.
func HasKey[K comparable, V any](field string, m map[K]V, key K) (V, error) {
	v, ok := m[key]
	if !ok {
		return v, newError(field, ErrKeyNotFound, "must contain key %v", key)
	}
	return v, nil
}

// OneOf passes value through when it is one of allowed.
func OneOf[T comparable](field string, value T, allowed ...T) (T, error) {
	if !slices.Contains(allowed, value) {
		return value, newError(field, ErrNotAllowed, "must be one of: %v", allowed)
	}
	return value, nil
}

// Defined checks an enum-like value against the full set of its defined constants.
func Defined[T comparable](field string, value T, defined ...T) (T, error) {
	if !slices.Contains(defined, value) {
		return value, newError(field, ErrUndefined, "%v is not a defined value", value)
	}
	return value, nil
}
