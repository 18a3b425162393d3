// Package moeda converts between pt-BR currency display strings and decimal
// amounts. Persistence and the wire always carry plain decimals; everything
// formatted here is presentation only.
package moeda

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrValorInvalido is returned when a display string cannot be interpreted as
// a monetary amount. Unparsable input is always an error, never an implicit
// zero.
var ErrValorInvalido = errors.New("valor monetário inválido")

// Formatar renders an amount using the pt-BR currency convention:
// "R$ 1.234,56". Negative amounts render as "-R$ 1.234,56".
func Formatar(valor decimal.Decimal) string {
	negativo := valor.IsNegative()
	fixo := valor.Abs().StringFixed(2) // "1234.56"

	inteiro, centavos, _ := strings.Cut(fixo, ".")

	// Group the integer part in thousands separated by dots.
	var b strings.Builder
	pre := len(inteiro) % 3
	if pre > 0 {
		b.WriteString(inteiro[:pre])
	}
	for i := pre; i < len(inteiro); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(inteiro[i : i+3])
	}

	out := "R$ " + b.String() + "," + centavos
	if negativo {
		return "-" + out
	}
	return out
}

// Interpretar parses a pt-BR currency display string back into a decimal.
// Accepts "R$ 1.234,56", "1.234,56", "1234,56" and bare "1234.56". Dots only
// group thousands when a comma is present; without one the dot is read as the
// decimal separator, so "1.234" means one point two three four, not 1234.
// Grouped values must carry the centavos comma (Formatar always emits it).
// Empty or malformed input returns ErrValorInvalido.
func Interpretar(texto string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(texto, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, ErrValorInvalido
	}

	if strings.Contains(s, ",") {
		// pt-BR convention: dot groups thousands, comma separates decimals.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrValorInvalido
	}
	return d, nil
}

// MascararDigitos implements the keystroke input mask: all non-digits are
// stripped, the remaining integer is treated as centavos and re-rendered as
// currency text. The result is always a valid display string with exactly two
// decimal digits; no digits at all masks to "R$ 0,00".
func MascararDigitos(texto string) string {
	var digitos strings.Builder
	for _, r := range texto {
		if r >= '0' && r <= '9' {
			digitos.WriteRune(r)
		}
	}

	s := strings.TrimLeft(digitos.String(), "0")
	if s == "" {
		s = "0"
	}
	// 15 significant digits covers the decimal(15,2) column; anything beyond
	// is typed noise.
	if len(s) > 15 {
		s = s[:15]
	}

	centavos, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return "R$ 0,00"
	}
	return Formatar(decimal.New(centavos, -2))
}
