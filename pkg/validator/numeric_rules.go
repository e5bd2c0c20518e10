package validator

import "github.com/dmitrymomot/checktree/pkg/guard"

func Positive[T Numeric](field string, value T) Rule {
	return guarded(field, func() (T, error) { return guard.Positive(field, value) })
}

func NotNegative[T Numeric](field string, value T) Rule {
	return guarded(field, func() (T, error) { return guard.NotNegative(field, value) })
}

// Min validates that value is greater than or equal to min.
func Min[T Numeric](field string, value, min T) Rule {
	return guarded(field, func() (T, error) { return guard.Min(field, value, min) })
}

// Max validates that value is less than or equal to max.
func Max[T Numeric](field string, value, max T) Rule {
	return guarded(field, func() (T, error) { return guard.Max(field, value, max) })
}

func InRange[T Numeric](field string, value, min, max T) Rule {
	return guarded(field, func() (T, error) { return guard.InRange(field, value, min, max) })
}
