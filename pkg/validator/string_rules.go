package validator

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/checktree/pkg/guard"
)

// NotBlank validates that a string is not empty after trimming whitespace.
func NotBlank(field, value string) Rule {
	return guarded(field, func() (string, error) { return guard.NotBlank(field, value) })
}

func MinLen(field, value string, min int) Rule {
	return guarded(field, func() (string, error) { return guard.MinLen(field, value, min) })
}

func MaxLen(field, value string, max int) Rule {
	return guarded(field, func() (string, error) { return guard.MaxLen(field, value, max) })
}

// Matches validates value against pattern. Compiles the pattern on each call - use
// MatchesRegexp with a precompiled expression in hot paths. An invalid pattern
// makes the rule fail rather than panic.
func Matches(field, value, pattern, description string) Rule {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{
			Field: field,
			Check: func() error { return err },
		}
	}
	return MatchesRegexp(field, value, re, description)
}

func MatchesRegexp(field, value string, re *regexp.Regexp, description string) Rule {
	return guarded(field, func() (string, error) { return guard.Matches(field, value, re, description) })
}

// UUID validates that value is a non-nil UUID.
func UUID(field, value string) Rule {
	return guarded(field, func() (uuid.UUID, error) { return guard.UUID(field, value) })
}

// OneOfFold validates membership ignoring case.
func OneOfFold(field, value string, allowed ...string) Rule {
	return guarded(field, func() (string, error) { return guard.OneOfFold(field, value, allowed...) })
}

// MatchesPattern registers Matches.
func (b *Builder) MatchesPattern(field, value, pattern, description string) *Builder {
	return b.Add(Matches(field, value, pattern, description))
}
