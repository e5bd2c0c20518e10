package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Input formats.
const (
	FormatAuto = "auto"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrMalformedInput    = errors.New("malformed input")
)

// csvColumns are the recognised CSV header names. Unknown columns are ignored.
var csvColumns = []string{"id", "name", "email", "age", "country", "phone", "tags"}

type document struct {
	Contacts []*Contact `yaml:"contacts"`
}

// detectFormat resolves FormatAuto from the file extension.
func detectFormat(path, format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" || format == FormatAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return FormatYAML, nil
		case ".csv":
			return FormatCSV, nil
		}
		return "", fmt.Errorf("%w: cannot detect format of %q", ErrUnsupportedFormat, path)
	}
	if format != FormatYAML && format != FormatCSV {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return format, nil
}

// loadFile reads contacts from path.
func loadFile(path, format string) ([]*Contact, error) {
	format, err := detectFormat(path, format)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if format == FormatCSV {
		return decodeCSV(f)
	}
	return decodeYAML(f)
}

func decodeYAML(r io.Reader) ([]*Contact, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrMalformedInput, err)
	}

	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, errors.Join(ErrMalformedInput, err)
	}

	// Attach source lines so reports can point at the record.
	if items := contactNodes(&root); len(items) == len(doc.Contacts) {
		for i, c := range doc.Contacts {
			if c != nil {
				c.line = items[i].Line
			}
		}
	}
	return doc.Contacts, nil
}

// contactNodes returns the sequence items under the top-level "contacts" key.
func contactNodes(root *yaml.Node) []*yaml.Node {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	m := root.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == "contacts" && m.Content[i+1].Kind == yaml.SequenceNode {
			return m.Content[i+1].Content
		}
	}
	return nil
}

func decodeCSV(r io.Reader) ([]*Contact, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrMalformedInput, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := index["id"]; !ok {
		return nil, fmt.Errorf("%w: csv header must contain %s", ErrMalformedInput, strings.Join(csvColumns, ","))
	}

	var contacts []*Contact
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrMalformedInput, err)
		}
		line, _ := cr.FieldPos(0)

		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		c := &Contact{
			ID:      get("id"),
			Name:    get("name"),
			Email:   get("email"),
			Country: get("country"),
			Phone:   get("phone"),
			line:    line,
		}
		if raw := get("age"); raw != "" {
			age, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: age %q is not a number", ErrMalformedInput, line, raw)
			}
			c.Age = age
		}
		if raw := get("tags"); raw != "" {
			for _, tag := range strings.Split(raw, ";") {
				if tag = strings.TrimSpace(tag); tag != "" {
					c.Tags = append(c.Tags, tag)
				}
			}
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}
