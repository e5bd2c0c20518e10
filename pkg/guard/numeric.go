package guard

// Numeric is the constraint used by the numeric guards.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Positive passes value through when it is greater than zero.
func Positive[T Numeric](field string, value T) (T, error) {
	if value <= 0 {
		return value, newError(field, ErrOutOfRange, "must be positive, got %v", value)
	}
	return value, nil
}

// NotNegative passes value through when it is zero or greater.
func NotNegative[T Numeric](field string, value T) (T, error) {
	if value < 0 {
		return value, newError(field, ErrOutOfRange, "must not be negative, got %v", value)
	}
	return value, nil
}

func Min[T Numeric](field string, value, min T) (T, error) {
	if value < min {
		return value, newError(field, ErrOutOfRange, "must be at least %v", min)
	}
	return value, nil
}

func Max[T Numeric](field string, value, max T) (T, error) {
	if value > max {
		return value, newError(field, ErrOutOfRange, "must be at most %v", max)
	}
	return value, nil
}

// InRange passes value through when min <= value <= max.
func InRange[T Numeric](field string, value, min, max T) (T, error) {
	if value < min || value > max {
		return value, newError(field, ErrOutOfRange, "must be between %v and %v", min, max)
	}
	return value, nil
}
