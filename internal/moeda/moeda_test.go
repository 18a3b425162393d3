package moeda

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatar(t *testing.T) {
	casos := []struct {
		valor    string
		esperado string
	}{
		{"0", "R$ 0,00"},
		{"0.5", "R$ 0,50"},
		{"1500", "R$ 1.500,00"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"999999999999.99", "R$ 999.999.999.999,99"},
		{"-42.10", "-R$ 42,10"},
	}
	for _, c := range casos {
		d, err := decimal.NewFromString(c.valor)
		require.NoError(t, err)
		assert.Equal(t, c.esperado, Formatar(d), "valor %s", c.valor)
	}
}

func TestInterpretar(t *testing.T) {
	casos := []struct {
		texto    string
		esperado string
	}{
		{"R$ 1.234,56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"1234,56", "1234.56"},
		{"1234.56", "1234.56"},
		{"R$ 0,00", "0"},
		{"  R$ 1.500,00 ", "1500"},
	}
	for _, c := range casos {
		d, err := Interpretar(c.texto)
		require.NoError(t, err, "texto %q", c.texto)
		esperado, _ := decimal.NewFromString(c.esperado)
		assert.True(t, d.Equal(esperado), "texto %q: obtido %s", c.texto, d)
	}
}

// Without a comma the dot is the decimal separator; "1.234" is one point two
// three four, never 1234. Grouped form needs the comma to disambiguate.
func TestInterpretar_PontoSemVirgula(t *testing.T) {
	d, err := Interpretar("1.234")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1.234")), "obtido %s", d)

	agrupado, err := Interpretar("1.234,00")
	require.NoError(t, err)
	assert.True(t, agrupado.Equal(decimal.NewFromInt(1234)), "obtido %s", agrupado)
}

// Unparsable input must be an error, never an implicit zero.
func TestInterpretar_Invalido(t *testing.T) {
	for _, texto := range []string{"", "   ", "R$", "abc", "R$ abc", "12,34,56"} {
		_, err := Interpretar(texto)
		assert.ErrorIs(t, err, ErrValorInvalido, "texto %q", texto)
	}
}

// Round-trip property: Interpretar(Formatar(cents/100)) == cents/100 for any
// non-negative cents value.
func TestRoundTrip(t *testing.T) {
	for _, centavos := range []int64{0, 1, 99, 100, 101, 12345, 150000, 99999999, 123456789012345} {
		original := decimal.New(centavos, -2)
		volta, err := Interpretar(Formatar(original))
		require.NoError(t, err)
		assert.True(t, volta.Equal(original), "centavos %d: %s != %s", centavos, volta, original)
	}
}

func TestMascararDigitos(t *testing.T) {
	casos := []struct {
		texto    string
		esperado string
	}{
		{"", "R$ 0,00"},
		{"abc", "R$ 0,00"},
		{"1", "R$ 0,01"},
		{"123", "R$ 1,23"},
		{"123456", "R$ 1.234,56"},
		{"R$ 1.234,56", "R$ 1.234,56"}, // re-masking is stable
		{"00012", "R$ 0,12"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, MascararDigitos(c.texto), "texto %q", c.texto)
	}
}
