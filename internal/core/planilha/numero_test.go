package planilha

import (
	"math"
	"testing"
)

func TestParseNumero(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado float64
	}{
		{"1.234,56", 1234.56},
		{"1,234.56", 1234.56},
		{"R$ 10,00", 10.0},
		{"R$ 1.250,75", 1250.75},
		{"10,5", 10.5},
		{"10.5", 10.5},
		{"1 234,56", 1234.56},
		{"-1,5", -1.5},
		{"42", 42.0},
		{"", 0.0},
		{"   ", 0.0},
		{"abc", 0.0},
		{"12,34,56", 0.0},
	}
	for _, caso := range casos {
		got := ParseNumero(caso.entrada)
		if math.Abs(got-caso.esperado) > 1e-9 {
			t.Errorf("ParseNumero(%q) = %v, esperava %v", caso.entrada, got, caso.esperado)
		}
	}
}
