package guard

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// NotBlank passes value through when it contains more than whitespace.
func NotBlank(field, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return value, newError(field, ErrEmpty, "must not be blank")
	}
	return value, nil
}

// MinLen checks the length of value in runes.
func MinLen(field, value string, min int) (string, error) {
	if utf8.RuneCountInString(value) < min {
		return value, newError(field, ErrInvalidLength, "must be at least %d characters long", min)
	}
	return value, nil
}

// MaxLen checks the length of value in runes.
func MaxLen(field, value string, max int) (string, error) {
	if utf8.RuneCountInString(value) > max {
		return value, newError(field, ErrInvalidLength, "must be at most %d characters long", max)
	}
	return value, nil
}

// Matches passes value through when re matches it. The description names the
// expected format in the failure message; re's source is used when it is empty.
func Matches(field, value string, re *regexp.Regexp, description string) (string, error) {
	if description == "" && re != nil {
		description = re.String()
	}
	if re == nil || !re.MatchString(value) {
		return value, newError(field, ErrInvalidFormat, "must match %s pattern", description)
	}
	return value, nil
}

// UUID parses value and rejects the nil UUID.
func UUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, newError(field, ErrInvalidFormat, "must be a valid UUID")
	}
	return id, nil
}

// OneOfFold passes value through when it equals one of allowed under Unicode
// case folding.
func OneOfFold(field, value string, allowed ...string) (string, error) {
	folder := cases.Fold()
	folded := folder.String(value)
	for _, a := range allowed {
		if folder.String(a) == folded {
			return value, nil
		}
	}
	return value, newError(field, ErrNotAllowed, "must be one of (case-insensitive): %s", strings.Join(allowed, ", "))
}
