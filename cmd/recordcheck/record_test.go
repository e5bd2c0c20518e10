package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checktree/pkg/validator"
)

func validContact() *Contact {
	return &Contact{
		ID:      "6f1c2b7e-3d4a-4b5c-8e9f-0a1b2c3d4e5f",
		Name:    "Alice",
		Email:   "alice@example.com",
		Age:     34,
		Country: "Germany",
		Addresses: []*Address{
			{Kind: AddressWork, City: "Berlin", Postcode: "10115"},
		},
	}
}

func TestContact_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid contact", func(t *testing.T) {
		assert.NoError(t, validContact().Validate())
	})

	t.Run("missing name is reported once", func(t *testing.T) {
		c := validContact()
		c.Name = "  "

		verrs := validator.ExtractValidationErrors(c.Validate())
		assert.Equal(t, []string{"name: must not be blank"}, verrs.Messages())
	})

	t.Run("long name", func(t *testing.T) {
		c := validContact()
		c.Name = strings.Repeat("a", maxNameLength+1)

		verrs := validator.ExtractValidationErrors(c.Validate())
		assert.Equal(t, []string{"name: must be at most 100 characters long"}, verrs.Messages())
	})

	t.Run("blank email skips format check", func(t *testing.T) {
		c := validContact()
		c.Email = ""

		verrs := validator.ExtractValidationErrors(c.Validate())
		assert.Equal(t, []string{"email: must not be blank"}, verrs.Messages())
	})

	t.Run("optional phone and attributes", func(t *testing.T) {
		c := validContact()
		c.Phone = "abc"
		c.Attributes = map[string]string{"campaign": "x"}

		verrs := validator.ExtractValidationErrors(c.Validate())
		assert.Equal(t, []string{"phone", "attributes"}, verrs.Fields())
	})

	t.Run("nested address failures keep the address identifier", func(t *testing.T) {
		c := validContact()
		c.Addresses = append(c.Addresses, &Address{Kind: "office", City: "", Postcode: "!"})

		verrs := validator.ExtractValidationErrors(c.Validate())
		assert.Equal(t, []string{
			"address 2 (office): kind: office is not a defined value",
			"address 2 (office): city: must not be blank",
			"address 2 (office): postcode: must match postcode pattern",
		}, verrs.Messages())
	})

	t.Run("addresses of the same kind are told apart", func(t *testing.T) {
		c := validContact()
		c.Addresses = []*Address{
			{Kind: AddressHome, City: "", Postcode: "10115"},
			{Kind: AddressHome, City: "", Postcode: "75001"},
		}

		verrs := validator.ExtractValidationErrors(c.Validate())
		assert.Equal(t, []string{
			"address 1 (home): city: must not be blank",
			"address 2 (home): city: must not be blank",
		}, verrs.Messages())
	})

	t.Run("too many tags", func(t *testing.T) {
		c := validContact()
		c.Tags = make([]string, maxTags+1)

		verrs := validator.ExtractValidationErrors(c.Validate())
		assert.Equal(t, []string{"tags: must have at most 10 items"}, verrs.Messages())
	})
}

func TestContact_Identifier(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "contact abc", (&Contact{ID: "abc", Name: "n"}).Identifier())
	assert.Equal(t, "contact n", (&Contact{Name: "n"}).Identifier())
	assert.Equal(t, "contact", (&Contact{}).Identifier())
	assert.Equal(t, "contact abc (line 4)", (&Contact{ID: "abc", line: 4}).Identifier())
}

func TestAddress_Identifier(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "address", (&Address{}).Identifier())
	assert.Equal(t, "address (home)", (&Address{Kind: AddressHome}).Identifier())
	assert.Equal(t, "address 3 (work)", (&Address{Kind: AddressWork, pos: 3}).Identifier())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := Config{Env: "production", LogLevel: "debug", LogFormat: "json", Format: "CSV"}
	require.NoError(t, cfg.Validate())

	cfg = Config{Env: " ", LogLevel: "loud", LogFormat: "xml", Format: "xlsx"}
	verrs := validator.ExtractValidationErrors(cfg.Validate())
	assert.Equal(t, []string{"ENV", "LOG_LEVEL", "LOG_FORMAT", "FORMAT"}, verrs.Fields())
}
