package validator

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/checktree/pkg/guard"
)

// Numeric is the constraint used by the numeric rules.
type Numeric = guard.Numeric

// ValidationError represents a single failed check.
type ValidationError struct {
	// Field is the label of the check that failed.
	Field string
	// Message describes what did not hold, without the field prefix.
	Message string
	// Owner is the identifier chain of the Validatable values this failure
	// was reported from, outermost first. Empty for top-level checks.
	Owner string
	// Err is the underlying cause, usually a guard sentinel.
	Err error
}

func (e ValidationError) Error() string {
	var b strings.Builder
	if e.Owner != "" {
		b.WriteString(e.Owner)
		b.WriteString(": ")
	}
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// withOwner prefixes the owner chain with owner.
func (e ValidationError) withOwner(owner string) ValidationError {
	if e.Owner != "" {
		owner = owner + ": " + e.Owner
	}
	e.Owner = owner
	return e
}

// ValidationErrors is the aggregated result of a validation pass. Entries are
// kept in forest traversal order.
type ValidationErrors []ValidationError

// Error joins the message of every entry with a newline.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "\n")
}

// Unwrap exposes every entry to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, err := range ve {
		errs = append(errs, err)
	}
	return errs
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field, in order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Messages returns the full message of every entry.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a deferred check bound to a field label. The typed rule
// constructors in this package capture their inputs and return a Rule;
// nothing runs until the Builder validates.
type Rule struct {
	Field string
	Check func() error
}

// Apply registers every rule as an independent top-level check and validates
// them in one pass.
func Apply(rules ...Rule) error {
	b := New()
	for _, rule := range rules {
		b.Add(rule)
	}
	return b.Validate()
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// failed reports whether err returned by a check counts as a failure. An
// empty ValidationErrors lists no failures and passes.
func failed(err error) bool {
	if err == nil {
		return false
	}
	if errs, ok := err.(ValidationErrors); ok && errs.IsEmpty() {
		return false
	}
	return true
}

// failures converts the error returned by a check labelled field into
// accumulator entries. Aggregated errors are flattened as-is; anything else
// becomes a single entry carrying the field label.
func failures(field string, err error) ValidationErrors {
	var nested ValidationErrors
	if errors.As(err, &nested) && !nested.IsEmpty() {
		return nested
	}
	return ValidationErrors{{
		Field:   field,
		Message: messageOf(field, err),
		Err:     err,
	}}
}

// messageOf strips the field prefix from a guard or validation error reported
// for the same field, so the check label is not repeated. Wrapped errors and
// errors about another field keep their full message.
func messageOf(field string, err error) string {
	switch e := err.(type) {
	case *guard.Error:
		if e.Field == field {
			return e.Message
		}
	case ValidationError:
		if e.Field == field && e.Owner == "" {
			return e.Message
		}
	}
	return err.Error()
}
