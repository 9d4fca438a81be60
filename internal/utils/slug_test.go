// internal/utils/slug_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "Pan de Molde", "pan-de-molde"},
		{"accents stripped", "Pan de Queso Ñandú", "pan-de-queso-nandu"},
		{"spanish vowels", "Café con Azúcar", "cafe-con-azucar"},
		{"symbols collapse", "Premezcla 3x1 (sin TACC!)", "premezcla-3x1-sin-tacc"},
		{"consecutive separators", "pan  --  casero", "pan-casero"},
		{"leading and trailing noise", "  ¡Ofertas!  ", "ofertas"},
		{"already a slug", "pan-de-molde", "pan-de-molde"},
		{"numbers kept", "Harina 000", "harina-000"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSlug(tt.input))
		})
	}
}

func TestNormalizeSlugDeterministic(t *testing.T) {
	first := NormalizeSlug("Ñoquis de Papá")
	second := NormalizeSlug("Ñoquis de Papá")
	assert.Equal(t, first, second)
	assert.Equal(t, "noquis-de-papa", first)
}
