// internal/core/planilha/tabela.go
package planilha

import "strings"

// Quantas linhas não vazias participam da contagem de delimitadores.
const linhasParaDeteccao = 15

// DetectarDelimitador conta vírgulas e pontos-e-vírgulas nas primeiras
// linhas não vazias do texto. Ponto-e-vírgula ganha em caso de empate.
func DetectarDelimitador(texto string) rune {
	var virgulas, pontosEVirgulas, vistas int
	for _, linha := range strings.Split(texto, "\n") {
		if strings.TrimSpace(linha) == "" {
			continue
		}
		virgulas += strings.Count(linha, ",")
		pontosEVirgulas += strings.Count(linha, ";")
		vistas++
		if vistas >= linhasParaDeteccao {
			break
		}
	}
	if pontosEVirgulas >= virgulas {
		return ';'
	}
	return ','
}

// DecodificarTabela transforma o texto CSV bruto em linhas de células já
// aparadas. Linhas vazias ou só de espaços são descartadas antes da divisão;
// aspas mal fechadas consomem o resto da linha em uma única célula.
func DecodificarTabela(texto string) [][]string {
	if strings.TrimSpace(texto) == "" {
		return nil
	}

	delimitador := DetectarDelimitador(texto)

	var linhas [][]string
	for _, linha := range strings.Split(texto, "\n") {
		linha = strings.TrimRight(linha, "\r")
		if strings.TrimSpace(linha) == "" {
			continue
		}
		linhas = append(linhas, DividirLinha(linha, delimitador))
	}
	return linhas
}

// DividirLinha separa uma linha em células honrando aspas duplas no estilo
// RFC 4180: o delimitador dentro de aspas não separa campos e "" dentro de
// um campo entre aspas vira uma aspa literal.
func DividirLinha(linha string, delimitador rune) []string {
	var (
		celulas    []string
		atual      strings.Builder
		entreAspas bool
	)

	runas := []rune(linha)
	for i := 0; i < len(runas); i++ {
		r := runas[i]
		switch {
		case r == '"':
			if entreAspas && i+1 < len(runas) && runas[i+1] == '"' {
				atual.WriteRune('"')
				i++
			} else {
				entreAspas = !entreAspas
			}
		case r == delimitador && !entreAspas:
			celulas = append(celulas, strings.TrimSpace(atual.String()))
			atual.Reset()
		default:
			atual.WriteRune(r)
		}
	}
	celulas = append(celulas, strings.TrimSpace(atual.String()))
	return celulas
}
