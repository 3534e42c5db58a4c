package planilha

import "testing"

func TestNormalizarTexto(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"  Çódigo ", "codigo"},
		{"PEÇA", "peca"},
		{"Descrição", "descricao"},
		{"MÍNIMO", "minimo"},
		{"", ""},
		{"   ", ""},
		{"ja normalizado", "ja normalizado"},
	}
	for _, caso := range casos {
		if got := NormalizarTexto(caso.entrada); got != caso.esperado {
			t.Errorf("NormalizarTexto(%q) = %q, esperava %q", caso.entrada, got, caso.esperado)
		}
	}
}

func TestNormalizarCodigo(t *testing.T) {
	t.Run("dígito único ganha zero à esquerda", func(t *testing.T) {
		for _, entrada := range []string{"5", " 5 "} {
			if got := NormalizarCodigo(entrada); got != "05" {
				t.Errorf("NormalizarCodigo(%q) = %q, esperava %q", entrada, got, "05")
			}
		}
	})

	t.Run("variantes do mesmo código colapsam", func(t *testing.T) {
		referencia := NormalizarCodigo("05")
		for _, entrada := range []string{"5", " 05 ", "05"} {
			if got := NormalizarCodigo(entrada); got != referencia {
				t.Errorf("NormalizarCodigo(%q) = %q, esperava %q", entrada, got, referencia)
			}
		}
	})

	t.Run("códigos alfabéticos vão para maiúsculas", func(t *testing.T) {
		if got := NormalizarCodigo(" abc-1 "); got != "ABC-1" {
			t.Errorf("NormalizarCodigo(\" abc-1 \") = %q", got)
		}
	})
}
