// Package planilha contém os utilitários de baixo nível para interpretar
// exportações CSV de planilhas mantidas à mão: normalização de texto,
// parsers de número/data/duração, divisão de linhas e localização de
// cabeçalho/colunas por palavra-chave.
package planilha

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizarTexto produz a forma canônica de comparação de uma string:
// decomposição NFD com remoção dos diacríticos, minúsculas e trim.
func NormalizarTexto(str string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	result, _, err := transform.String(t, str)
	if err != nil {
		result = str
	}
	return strings.TrimSpace(strings.ToLower(result))
}

// NormalizarCodigo canoniza um código de item para junção entre planilhas:
// trim, maiúsculas e zero à esquerda quando o código é um dígito único
// ("5", "05" e " 05 " colapsam no mesmo item).
func NormalizarCodigo(str string) string {
	s := strings.ToUpper(strings.TrimSpace(str))
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		s = "0" + s
	}
	return s
}
