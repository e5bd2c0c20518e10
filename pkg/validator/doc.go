// Package validator builds and runs trees of named checks, reporting every
// failure in a single aggregated error.
//
// Checks are registered on a Builder and run later, all at once, by Validate.
// The Builder keeps a cursor into a forest of branches: registrations append
// to the current branch, Then nests the following checks under the last one,
// Back returns to the enclosing branch and NewBranch starts a new independent
// top-level branch. A nested check runs only when its parent check passed, so
// "value is present" can guard "value has the right length" without a nil
// dereference or a duplicate report.
//
// # Architecture
//
// Checks live in a flat arena; each node stores its parent index and the
// indexes of its children. Rule values pair a field label with a deferred
// check func() error. The typed constructors (NotNil, Positive, Matches,
// HasKey, Valid, ...) build rules on top of the guard package, which supplies
// the primitive predicates and their messages.
//
// Core building blocks:
//   - Builder          – cursor-based registration plus the executor
//   - Rule             – field label and deferred check
//   - ValidationError  – a single failure, optionally owned by a nested value
//   - ValidationErrors – slice type returned by Validate, implements error
//   - Validatable      – values that validate themselves and name themselves
//
// # Usage
//
//	v := validator.New()
//	v.IsNotNil("user", user)
//	if err := v.Then(); err != nil {
//	    return err // sequencing mistake, fix the calling code
//	}
//	v.Add(validator.NotBlank("user.email", user.Email))
//	v.NewBranch().
//	    If(order.Discount != 0).Add(validator.InRange("discount", order.Discount, 1, 50)).
//	    AreValid("items", items...)
//
//	if err := v.Validate(); err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // every failure, in registration order
//	    }
//	}
//
// For a flat list of independent rules use Apply.
//
// # Error Handling
//
// Then and Back return ErrInvalidSequencing immediately when the cursor cannot
// move. Check failures are never returned one by one: Validate collects them
// into ValidationErrors whose message is the newline-joined list of entries.
// ValidationErrors unwraps to its entries, and each entry unwraps to its
// cause, so errors.Is(err, guard.ErrNil) works on the aggregated result.
//
// Failures reported by a Validatable are kept individually and prefixed with
// its Identifier ("order-42: total: must be positive, got -1").
//
// A Builder is meant for one validation session and is not safe for
// concurrent use.
package validator
