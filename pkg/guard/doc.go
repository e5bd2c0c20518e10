// Package guard provides primitive guard clauses used by the validator
// package to build its typed checks.
//
// Every guard takes the name of the parameter being checked and the value
// itself. When the clause holds, the value is passed through unchanged so
// guards can be used inline:
//
//	port, err := guard.InRange("port", cfg.Port, 1, 65535)
//
// When it does not hold, the returned error is a *Error carrying the
// parameter name, a human-readable message and one of the package sentinel
// errors, so callers can branch with errors.Is:
//
//	if errors.Is(err, guard.ErrOutOfRange) {
//	    // ...
//	}
//
// # Nil handling
//
// IsNil treats typed nil pointers, maps, slices, channels and funcs stored in
// an interface as nil. NotNil, Nil, NotEmpty and Equal all rely on it, so a
// (*T)(nil) passed as any is never mistaken for a present value.
//
// Guards are stateless and safe for concurrent use.
package guard
