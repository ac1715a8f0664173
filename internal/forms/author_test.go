package forms

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabinsunar/library-app/internal/entities"
)

func TestAuthorForm_Valid(t *testing.T) {
	form := NewAuthorForm(url.Values{
		"first_name":    {"  Isaac "},
		"family_name":   {"Asimov"},
		"date_of_birth": {"1920-01-02"},
		"date_of_death": {""},
	})

	require.Empty(t, form.Validate())

	author := form.Author()
	assert.Equal(t, "Asimov, Isaac", author.Name())
	require.NotNil(t, author.DateOfBirth)
	assert.Equal(t, time.Date(1920, time.January, 2, 0, 0, 0, 0, time.UTC), *author.DateOfBirth)
	assert.Nil(t, author.DateOfDeath)
}

func TestAuthorForm_AcceptsRFC3339Dates(t *testing.T) {
	form := NewAuthorForm(url.Values{
		"first_name":    {"Isaac"},
		"family_name":   {"Asimov"},
		"date_of_death": {"1992-04-06T00:00:00Z"},
	})

	require.Empty(t, form.Validate())
	assert.Equal(t, "1992-04-06", form.Author().DateOfDeathInput())
}

func TestAuthorForm_Errors(t *testing.T) {
	tests := []struct {
		name     string
		values   url.Values
		expected Errors
	}{
		{
			name:   "missing names",
			values: url.Values{"first_name": {"   "}},
			expected: Errors{
				{Field: "first_name", Message: "First name must be specified."},
				{Field: "family_name", Message: "Family name must be specified."},
			},
		},
		{
			name:   "non alphanumeric",
			values: url.Values{"first_name": {"J.R.R."}, "family_name": {"Tolkien"}},
			expected: Errors{
				{Field: "first_name", Message: "First name has non-alphanumeric characters."},
			},
		},
		{
			name:   "too long",
			values: url.Values{"first_name": {strings.Repeat("a", 101)}, "family_name": {"Tolkien"}},
			expected: Errors{
				{Field: "first_name", Message: "First name must not exceed 100 characters."},
			},
		},
		{
			name: "bad dates",
			values: url.Values{
				"first_name":    {"Isaac"},
				"family_name":   {"Asimov"},
				"date_of_birth": {"1920-13-45"},
				"date_of_death": {"yesterday"},
			},
			expected: Errors{
				{Field: "date_of_birth", Message: "Invalid date of birth"},
				{Field: "date_of_death", Message: "Invalid date of death"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewAuthorForm(tt.values).Validate())
		})
	}
}

func TestAuthorFormFrom_Unescapes(t *testing.T) {
	born := time.Date(1920, time.January, 2, 0, 0, 0, 0, time.UTC)
	form := AuthorFormFrom(&entities.Author{FirstName: "A&amp;B", FamilyName: "C", DateOfBirth: &born})

	assert.Equal(t, "A&B", form.FirstName)
	assert.Equal(t, "1920-01-02", form.DateOfBirth)
	assert.Empty(t, form.DateOfDeath)
}
