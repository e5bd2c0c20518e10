package validator_test

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checktree/pkg/guard"
	"github.com/dmitrymomot/checktree/pkg/validator"
)

type status string

const (
	statusActive   status = "active"
	statusArchived status = "archived"
)

func TestRules(t *testing.T) {
	t.Parallel()

	var nilPtr *struct{}
	re := regexp.MustCompile(`^\d{3}$`)

	tests := []struct {
		name    string
		rule    validator.Rule
		wantErr error
		message string
	}{
		{"not nil passes", validator.NotNil("v", 1), nil, ""},
		{"not nil fails on typed nil", validator.NotNil("v", nilPtr), guard.ErrNil, "must not be nil"},
		{"nil passes", validator.Nil("v", nil), nil, ""},
		{"nil fails", validator.Nil("v", "x"), guard.ErrNotNil, "must be nil"},
		{"not empty passes", validator.NotEmpty("v", []int{1}), nil, ""},
		{"not empty fails on empty string", validator.NotEmpty("v", ""), guard.ErrEmpty, "must not be nil or empty"},
		{"not empty fails on nil", validator.NotEmpty("v", nil), guard.ErrEmpty, "must not be nil or empty"},
		{"equal nil nil", validator.Equal("v", nil, nil), nil, ""},
		{"equal nil value", validator.Equal("v", nil, "x"), guard.ErrNotEqual, "must equal x, got <nil>"},
		{"equal value nil", validator.Equal("v", "x", nil), guard.ErrNotEqual, "must equal <nil>, got x"},
		{"equal values", validator.Equal("v", "x", "x"), nil, ""},
		{"satisfies", validator.Satisfies("v", 3, func(n int) bool { return n > 5 }, "must exceed 5"), guard.ErrPredicate, "must exceed 5"},
		{"positive", validator.Positive("v", 0), guard.ErrOutOfRange, "must be positive, got 0"},
		{"not negative", validator.NotNegative("v", 0.0), nil, ""},
		{"min", validator.Min("v", 1, 2), guard.ErrOutOfRange, "must be at least 2"},
		{"max", validator.Max("v", 3, 2), guard.ErrOutOfRange, "must be at most 2"},
		{"in range", validator.InRange("v", 5, 1, 10), nil, ""},
		{"not blank", validator.NotBlank("v", " "), guard.ErrEmpty, "must not be blank"},
		{"min len", validator.MinLen("v", "ab", 3), guard.ErrInvalidLength, "must be at least 3 characters long"},
		{"max len", validator.MaxLen("v", "abcd", 3), guard.ErrInvalidLength, "must be at most 3 characters long"},
		{"matches", validator.Matches("v", "12a", `^\d+$`, "digits"), guard.ErrInvalidFormat, "must match digits pattern"},
		{"matches regexp", validator.MatchesRegexp("v", "123", re, "code"), nil, ""},
		{"uuid", validator.UUID("v", uuid.NewString()), nil, ""},
		{"uuid fails", validator.UUID("v", "nope"), guard.ErrInvalidFormat, "must be a valid UUID"},
		{"one of fold", validator.OneOfFold("v", "DE", "de", "fr"), nil, ""},
		{"min items", validator.MinItems("v", []string{}, 1), guard.ErrInvalidLength, "must have at least 1 items"},
		{"max items", validator.MaxItems("v", []int{1, 2}, 1), guard.ErrInvalidLength, "must have at most 1 items"},
		{"has key", validator.HasKey("v", map[string]int{"a": 1}, "b"), guard.ErrKeyNotFound, "must contain key b"},
		{"one of", validator.OneOf("v", 4, 1, 2, 3), guard.ErrNotAllowed, "must be one of: [1 2 3]"},
		{"defined", validator.Defined("v", status("deleted"), statusActive, statusArchived), guard.ErrUndefined, "deleted is not a defined value"},
		{"defined passes", validator.Defined("v", statusArchived, statusActive, statusArchived), nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "v", tt.rule.Field)

			err := validator.Apply(tt.rule)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "v", verrs[0].Field)
			assert.Equal(t, tt.message, verrs[0].Message)
		})
	}
}

func TestMatches_InvalidPattern(t *testing.T) {
	t.Parallel()

	var err error
	require.NotPanics(t, func() {
		err = validator.Apply(validator.Matches("code", "abc", "[", "code"))
	})

	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "code", verrs[0].Field)
	assert.Contains(t, verrs[0].Message, "missing closing ]")
}

func TestBuilderSugar(t *testing.T) {
	t.Parallel()

	v := validator.New()
	v.IsNotNil("a", nil).
		IsNil("b", 1).
		IsNotEmpty("c", "").
		AreEqual("d", nil, nil).
		AreEqual("e", nil, "x").
		MatchesPattern("f", "abc", `^\d+$`, "digits")

	verrs := validator.ExtractValidationErrors(v.Validate())
	assert.Equal(t, []string{"a", "b", "c", "e", "f"}, verrs.Fields())
}
