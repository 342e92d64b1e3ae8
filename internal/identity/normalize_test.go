package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain name",
			input:    "Mike Trout",
			expected: "mike trout",
		},
		{
			name:     "Diacritics stripped",
			input:    "José Ramírez",
			expected: "jose ramirez",
		},
		{
			name:     "Periods removed",
			input:    "J.T. Realmuto",
			expected: "jt realmuto",
		},
		{
			name:     "Whitespace collapsed and trimmed",
			input:    "  Ronald   Acuna  Jr ",
			expected: "ronald acuna jr",
		},
		{
			name:     "Already normalized",
			input:    "shohei ohtani",
			expected: "shohei ohtani",
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"José Ramírez",
		"J.T. Realmuto",
		"  Ronald   Acuna  Jr ",
		"Peña, Jeremy",
		"",
		"ALL CAPS NAME",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", input)
	}
}

func TestNormalize_AccentVariantsCollide(t *testing.T) {
	assert.Equal(t, Normalize("Jose Ramirez"), Normalize("José Ramírez"))
	assert.Equal(t, "jose ramirez", Normalize("José Ramírez"))
}

func TestInvertCommaName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Last comma first",
			input:    "Ramirez, Jose",
			expected: "Jose Ramirez",
		},
		{
			name:     "With suffix",
			input:    "Witt, Bobby, Jr.",
			expected: "Bobby Witt Jr.",
		},
		{
			name:     "No comma passes through",
			input:    "Jose Ramirez",
			expected: "Jose Ramirez",
		},
		{
			name:     "Dangling comma passes through",
			input:    "Ramirez,",
			expected: "Ramirez,",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InvertCommaName(tt.input))
		})
	}
}

func TestHasDiacritics(t *testing.T) {
	assert.True(t, HasDiacritics("José Ramírez"))
	assert.False(t, HasDiacritics("Jose Ramirez"))
	assert.False(t, HasDiacritics(""))
}
