package estoque

import "testing"

func TestCanonicalizarUnidade(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"un", "un"},
		{"Unidade", "un"},
		{"UND", "un"},
		{"PÇ", "pç"},
		{"peça", "pç"},
		{"pecas", "pç"},
		{"metro", "mt"},
		{"Metros", "mt"},
		{"m", "mt"},
		{"KG", "kg"},
		{"Quilo", "kg"},
		{"litros", "lt"},
		{"L", "lt"},
		{"un.", "un"},
		{"", "un"},
		{"   ", "un"},
		// fora do vocabulário: abreviação de duas letras do próprio valor
		{"caixa", "ca"},
		{"rolo", "ro"},
	}
	for _, caso := range casos {
		if got := CanonicalizarUnidade(caso.entrada); got != caso.esperado {
			t.Errorf("CanonicalizarUnidade(%q) = %q, esperava %q", caso.entrada, got, caso.esperado)
		}
	}

	t.Run("erro de digitação recuperado pelo matcher", func(t *testing.T) {
		if got := CanonicalizarUnidade("metrro"); got != "mt" {
			t.Errorf("CanonicalizarUnidade(\"metrro\") = %q, esperava \"mt\"", got)
		}
	})
}
