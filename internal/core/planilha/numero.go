package planilha

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumero interpreta um número vindo de célula de planilha, tolerando
// pontuação brasileira e americana. Regras de desambiguação:
//   - só vírgula presente: vírgula é o separador decimal ("10,50" -> 10.5);
//   - ponto e vírgula presentes: o que aparece primeiro é separador de
//     milhar, o outro é o decimal ("1.234,56" e "1,234.56" -> 1234.56).
//
// Símbolos de moeda, espaços internos e qualquer outro caractere que não
// seja dígito, ponto ou sinal são descartados. Nunca retorna erro: entrada
// ilegível vale 0.0.
func ParseNumero(val string) float64 {
	s := strings.TrimSpace(val)
	if s == "" {
		return 0.0
	}

	s = strings.ReplaceAll(s, " ", "")
	s = strings.Join(strings.Fields(s), "")

	temVirgula := strings.Contains(s, ",")
	temPonto := strings.Contains(s, ".")
	switch {
	case temVirgula && !temPonto:
		s = strings.ReplaceAll(s, ",", ".")
	case temVirgula && temPonto:
		if strings.Index(s, ".") < strings.Index(s, ",") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0.0
	}
	return f
}
