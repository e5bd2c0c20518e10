package validator

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/checktree/pkg/guard"
)

// Validatable is implemented by values that validate themselves.
//
// Validate should return ValidationErrors listing every problem, usually by
// running its own Builder. Identifier names the value in nested failure
// messages.
type Validatable interface {
	Validate() error
	Identifier() string
}

// Valid runs value's own validation. Every failure it reports is kept and
// prefixed with value's identifier; a nil value fails.
func Valid(field string, value Validatable) Rule {
	return Rule{
		Field: field,
		Check: func() error {
			if _, err := guard.NotNil(field, value); err != nil {
				return err
			}
			if errs := nestedFailures(value); !errs.IsEmpty() {
				return errs
			}
			return nil
		},
	}
}

// AllValid runs the validation of every item and reports all failures
// together. Nil items fail under "field[i]".
func AllValid[T Validatable](field string, items []T) Rule {
	return Rule{
		Field: field,
		Check: func() error {
			var errs ValidationErrors
			for i, item := range items {
				if guard.IsNil(item) {
					errs.Add(ValidationError{
						Field:   fmt.Sprintf("%s[%d]", field, i),
						Message: "must not be nil",
						Err:     guard.ErrNil,
					})
					continue
				}
				errs = append(errs, nestedFailures(item)...)
			}
			if errs.IsEmpty() {
				return nil
			}
			return errs
		},
	}
}

// nestedFailures validates value and relabels what it reports with its identifier.
func nestedFailures(value Validatable) ValidationErrors {
	err := value.Validate()
	if !failed(err) {
		return nil
	}

	owner := value.Identifier()
	var inner ValidationErrors
	if !errors.As(err, &inner) || inner.IsEmpty() {
		return ValidationErrors{{
			Message: err.Error(),
			Owner:   owner,
			Err:     err,
		}}
	}

	relabeled := make(ValidationErrors, 0, len(inner))
	for _, e := range inner {
		relabeled = append(relabeled, e.withOwner(owner))
	}
	return relabeled
}

// IsValid registers Valid.
func (b *Builder) IsValid(field string, value Validatable) *Builder {
	return b.Add(Valid(field, value))
}

// AreValid registers AllValid.
func (b *Builder) AreValid(field string, items ...Validatable) *Builder {
	return b.Add(AllValid(field, items))
}
