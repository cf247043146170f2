package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     bool
	}{
		{"city", "London", true},
		{"city_with_country", "Paris, France", true},
		{"coordinates", "48.8567,2.3508", true},
		{"unicode", "Kraków", true},
		{"empty", "", false},
		{"whitespace_only", "   ", false},
		{"control_character", "Lon\x00don", false},
		{"newline", "London\nParis", false},
		{"too_long", strings.Repeat("a", MaxLocationLength+1), false},
		{"max_length", strings.Repeat("a", MaxLocationLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidLocation(tt.location))
		})
	}
}

func TestNormalizeLocation(t *testing.T) {
	assert.Equal(t, "London", NormalizeLocation("  London "))
	assert.Equal(t, "New York", NormalizeLocation("New    York"))
	assert.Equal(t, "", NormalizeLocation("   "))
}

func TestIsNotEmpty(t *testing.T) {
	assert.True(t, IsNotEmpty("  Kyiv  "))
	assert.False(t, IsNotEmpty(" "))
	assert.False(t, IsNotEmpty("\t\n"))
	assert.False(t, IsNotEmpty(""))
}
