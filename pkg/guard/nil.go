package guard

import (
	"reflect"
)

// IsNil reports whether v is nil, including typed nil pointers, maps,
// slices, channels, funcs and interfaces held in v.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsEmpty reports whether v is nil or has zero length.
// Pointers are followed, so a *string pointing to "" is empty.
func IsEmpty(v any) bool {
	if IsNil(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Pointer:
		return IsEmpty(rv.Elem().Interface())
	}
	return false
}

// NotNil passes value through unless it is nil.
func NotNil[T any](field string, value T) (T, error) {
	if IsNil(value) {
		return value, newError(field, ErrNil, "must not be nil")
	}
	return value, nil
}

// Nil passes value through only when it is nil.
func Nil[T any](field string, value T) (T, error) {
	if !IsNil(value) {
		return value, newError(field, ErrNotNil, "must be nil")
	}
	return value, nil
}

// NotEmpty passes value through unless it is nil or has zero length.
func NotEmpty[T any](field string, value T) (T, error) {
	if IsEmpty(value) {
		return value, newError(field, ErrEmpty, "must not be nil or empty")
	}
	return value, nil
}

// Equal compares value with expected. Two nils are equal; a nil compared with
// a non-nil value is not. Everything else is compared with reflect.DeepEqual.
func Equal(field string, value, expected any) (any, error) {
	valueNil, expectedNil := IsNil(value), IsNil(expected)
	switch {
	case valueNil && expectedNil:
		return value, nil
	case valueNil != expectedNil:
		return value, newError(field, ErrNotEqual, "must equal %v, got %v", expected, value)
	case !reflect.DeepEqual(value, expected):
		return value, newError(field, ErrNotEqual, "must equal %v, got %v", expected, value)
	}
	return value, nil
}

// Satisfies passes value through when predicate holds, otherwise fails with message.
// A nil predicate never holds.
func Satisfies[T any](field string, value T, predicate func(T) bool, message string) (T, error) {
	if predicate == nil || !predicate(value) {
		if message == "" {
			message = "is invalid"
		}
		return value, newError(field, ErrPredicate, "%s", message)
	}
	return value, nil
}
