package validator

import "github.com/dmitrymomot/checktree/pkg/guard"

func MinItems[T any](field string, value []T, min int) Rule {
	return guarded(field, func() ([]T, error) { return guard.MinItems(field, value, min) })
}

func MaxItems[T any](field string, value []T, max int) Rule {
	return guarded(field, func() ([]T, error) { return guard.MaxItems(field, value, max) })
}

// HasKey validates that m contains key.
func HasKey[K comparable, V any](field string, m map[K]V, key K) Rule {
	return guarded(field, func() (V, error) { return guard.HasKey(field, m, key) })
}

func OneOf[T comparable](field string, value T, allowed ...T) Rule {
	return guarded(field, func() (T, error) { return guard.OneOf(field, value, allowed...) })
}

// Defined validates that an enum value is one of its defined constants.
func Defined[T comparable](field string, value T, defined ...T) Rule {
	return guarded(field, func() (T, error) { return guard.Defined(field, value, defined...) })
}
