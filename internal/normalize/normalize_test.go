package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierCollapsesWhitespaceAndCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12345678", "12345678"},
		{"  12345678 ", "12345678"},
		{"12 345\t678", "12 345 678"},
		{"ab-123", "AB-123"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Identifier(tc.in), "input %q", tc.in)
	}
}

func TestIdentifierIdempotent(t *testing.T) {
	inputs := []string{"  jane   doe ", "12345678", "A b\tC", ""}
	for _, in := range inputs {
		once := Identifier(in)
		assert.Equal(t, once, Identifier(once))
	}
}

func TestHeaderStripsDiacritics(t *testing.T) {
	assert.Equal(t, "HABILITACION", Header("Habilitación"))
	assert.Equal(t, "NOMBRES Y APELLIDOS", Header(" Nombres   y Apellidos "))
	assert.Equal(t,
		"FECHA DE VIGENCIA DE HABILITACION DE LICENCIA INTERNA",
		Header("FECHA DE VIGENCIA DE HABILITACIÓN DE LICENCIA INTERNA"))
}

func TestHeaderIdempotent(t *testing.T) {
	once := Header("Fecha  de Vigencia de Habilitación")
	assert.Equal(t, once, Header(once))
}
