package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, format, want string
		wantErr            bool
	}{
		{"a.yaml", "", FormatYAML, false},
		{"a.YML", "auto", FormatYAML, false},
		{"a.csv", "auto", FormatCSV, false},
		{"a.txt", "csv", FormatCSV, false},
		{"a.txt", "", "", true},
		{"a.yaml", "xlsx", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.format, func(t *testing.T) {
			got, err := detectFormat(tt.path, tt.format)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()

	contacts, err := loadFile("testdata/invalid.yaml", FormatAuto)
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	assert.Equal(t, 2, contacts[0].line)
	assert.Equal(t, 11, contacts[1].line)
	assert.Equal(t, 200, contacts[0].Age)
	require.Len(t, contacts[0].Addresses, 1)
	assert.Equal(t, AddressKind("office"), contacts[0].Addresses[0].Kind)
	assert.Equal(t, map[string]string{"campaign": "spring"}, contacts[1].Attributes)
}

func TestLoadFile_CSV(t *testing.T) {
	t.Parallel()

	contacts, err := loadFile("testdata/contacts.csv", FormatAuto)
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	assert.Equal(t, "Dave", contacts[0].Name)
	assert.Equal(t, 40, contacts[0].Age)
	assert.Equal(t, []string{"a", "b"}, contacts[0].Tags)
	assert.Equal(t, 2, contacts[0].line)
	assert.Equal(t, "", contacts[1].ID)
	assert.Nil(t, contacts[1].Tags)
	assert.Equal(t, 3, contacts[1].line)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := loadFile("testdata/bad_age.csv", FormatAuto)
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = loadFile("testdata/missing.yaml", FormatAuto)
	assert.Error(t, err)

	_, err = decodeYAML(strings.NewReader("contacts: [unclosed"))
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = decodeCSV(strings.NewReader("name,email\nx,y\n"))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	contacts, err := decodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, contacts)

	contacts, err = decodeCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
