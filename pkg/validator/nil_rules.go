package validator

import (
	"github.com/dmitrymomot/checktree/pkg/guard"
)

// guarded adapts a guard call into a Rule, discarding the passthrough value.
func guarded[T any](field string, fn func() (T, error)) Rule {
	return Rule{
		Field: field,
		Check: func() error {
			_, err := fn()
			return err
		},
	}
}

// NotNil fails when value is nil, including typed nil pointers.
func NotNil(field string, value any) Rule {
	return guarded(field, func() (any, error) { return guard.NotNil(field, value) })
}

// Nil fails when value is present.
func Nil(field string, value any) Rule {
	return guarded(field, func() (any, error) { return guard.Nil(field, value) })
}

// NotEmpty fails when value is nil or has zero length.
func NotEmpty(field string, value any) Rule {
	return guarded(field, func() (any, error) { return guard.NotEmpty(field, value) })
}

// Equal fails unless value equals expected. Two nils are equal; nil against a
// non-nil value fails without panicking.
func Equal(field string, value, expected any) Rule {
	return guarded(field, func() (any, error) { return guard.Equal(field, value, expected) })
}

// Satisfies fails with message when predicate does not hold for value.
func Satisfies[T any](field string, value T, predicate func(T) bool, message string) Rule {
	return guarded(field, func() (T, error) { return guard.Satisfies(field, value, predicate, message) })
}

// IsNotNil registers NotNil.
func (b *Builder) IsNotNil(field string, value any) *Builder {
	return b.Add(NotNil(field, value))
}

// IsNil registers Nil.
func (b *Builder) IsNil(field string, value any) *Builder {
	return b.Add(Nil(field, value))
}

// IsNotEmpty registers NotEmpty.
func (b *Builder) IsNotEmpty(field string, value any) *Builder {
	return b.Add(NotEmpty(field, value))
}

// AreEqual registers Equal.
func (b *Builder) AreEqual(field string, value, expected any) *Builder {
	return b.Add(Equal(field, value, expected))
}
