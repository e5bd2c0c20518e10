package main

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/checktree/pkg/validator"
)

const (
	maxNameLength = 100
	maxAge        = 150
	maxTags       = 10
)

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,18}[0-9]$`)
	postcodePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 \-]{2,9}$`)

	countries = []string{"Germany", "France", "Spain", "Italy", "Netherlands", "Poland", "Ukraine"}
)

// AddressKind is the kind of a contact address.
type AddressKind string

const (
	AddressHome AddressKind = "home"
	AddressWork AddressKind = "work"
)

type Address struct {
	Kind     AddressKind `yaml:"kind"`
	City     string      `yaml:"city"`
	Postcode string      `yaml:"postcode"`

	// pos is the 1-based position within the contact, 0 when unknown.
	pos int
}

// Identifier names the address by its position and kind.
func (a *Address) Identifier() string {
	id := "address"
	if a.pos > 0 {
		id = fmt.Sprintf("address %d", a.pos)
	}
	if a.Kind != "" {
		id = fmt.Sprintf("%s (%s)", id, a.Kind)
	}
	return id
}

func (a *Address) Validate() error {
	v := validator.New()
	v.Add(validator.Defined("kind", a.Kind, AddressHome, AddressWork))
	v.Add(validator.NotBlank("city", a.City))
	v.Add(validator.NotBlank("postcode", a.Postcode))
	if err := v.Then(); err != nil {
		return err
	}
	v.Add(validator.MatchesRegexp("postcode", a.Postcode, postcodePattern, "postcode"))
	return v.Validate()
}

// Contact is one record of an input file.
type Contact struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	Email      string            `yaml:"email"`
	Age        int               `yaml:"age"`
	Country    string            `yaml:"country"`
	Phone      string            `yaml:"phone"`
	Tags       []string          `yaml:"tags"`
	Attributes map[string]string `yaml:"attributes"`
	Addresses  []*Address        `yaml:"addresses"`

	// line is the source line of the record, 0 when unknown.
	line int
}

// Identifier names the contact by id, falling back to its name, and adds the
// source line when known.
func (c *Contact) Identifier() string {
	id := "contact"
	switch {
	case c.ID != "":
		id += " " + c.ID
	case c.Name != "":
		id += " " + c.Name
	}
	if c.line > 0 {
		id = fmt.Sprintf("%s (line %d)", id, c.line)
	}
	return id
}

// Validate checks the contact. Length and format checks are nested under the
// presence checks, so a missing value is reported once.
func (c *Contact) Validate() error {
	v := validator.New()

	v.Add(validator.UUID("id", c.ID))

	v.Add(validator.NotBlank("name", c.Name))
	if err := v.Then(); err != nil {
		return err
	}
	v.Add(validator.MaxLen("name", c.Name, maxNameLength))

	v.NewBranch().Add(validator.NotBlank("email", c.Email))
	if err := v.Then(); err != nil {
		return err
	}
	v.Add(validator.MatchesRegexp("email", c.Email, emailPattern, "email"))
	if err := v.Back(); err != nil {
		return err
	}

	v.Add(validator.InRange("age", c.Age, 0, maxAge))
	v.Add(validator.OneOfFold("country", c.Country, countries...))
	v.If(c.Phone != "").Add(validator.MatchesRegexp("phone", c.Phone, phonePattern, "phone"))
	v.Add(validator.MaxItems("tags", c.Tags, maxTags))
	v.If(len(c.Attributes) > 0).Add(validator.HasKey("attributes", c.Attributes, "source"))
	for i, a := range c.Addresses {
		if a != nil {
			a.pos = i + 1
		}
	}
	v.Add(validator.AllValid("addresses", c.Addresses))

	return v.Validate()
}
