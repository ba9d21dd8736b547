package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ferretería Los Amigos!", "ferreteria-los-amigos"},
		{"  Café   con Leche  ", "cafe-con-leche"},
		{"snake_case_title", "snake-case-title"},
		{"ÑANDÚ", "nandu"},
		{"producto---doble", "producto-doble"},
		{"!!!", ""},
		{"", ""},
		{"-leading and trailing-", "leading-and-trailing"},
		{"precio S/ 10.50", "precio-s-1050"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestDocumentSlug(t *testing.T) {
	assert.Equal(t, "martillo-abc123", DocumentSlug("Martillo", "abc123"))

	// An unusable title yields the bare id, never "-abc123"
	assert.Equal(t, "abc123", DocumentSlug("", "abc123"))
	assert.Equal(t, "abc123", DocumentSlug("!!!", "abc123"))
}
