// internal/core/planilha/esquema.go
package planilha

import "strings"

// Quantas linhas do topo da planilha são inspecionadas em busca do
// cabeçalho. Planilhas manuais costumam ter títulos e legendas antes dele.
const linhasParaCabecalho = 20

// ColunaAusente é a sentinela devolvida quando nenhum termo candidato casa
// com o cabeçalho; os campos dependentes caem no default do seu tipo.
const ColunaAusente = -1

// LocalizarCabecalho varre no máximo as primeiras 20 linhas e devolve o
// índice da primeira cuja alguma célula normalizada contenha qualquer uma
// das palavras-chave do feed. Retorna -1 quando não há cabeçalho
// reconhecível.
func LocalizarCabecalho(linhas [][]string, palavrasChave []string) int {
	max := linhasParaCabecalho
	if len(linhas) < max {
		max = len(linhas)
	}
	for i := 0; i < max; i++ {
		for _, celula := range linhas[i] {
			normalizada := NormalizarTexto(celula)
			if normalizada == "" {
				continue
			}
			for _, chave := range palavrasChave {
				if strings.Contains(normalizada, NormalizarTexto(chave)) {
					return i
				}
			}
		}
	}
	return ColunaAusente
}

// EscolherColuna resolve um campo canônico para um índice de coluna. Os
// termos candidatos são tentados em ordem de prioridade; uma célula casa
// por igualdade das formas normalizadas ou, para termos com mais de 2
// caracteres, por substring. O primeiro termo que casa vence, e dentro
// dele a primeira coluna. Termos curtos só casam exato para que "os" não
// capture cabeçalhos como "custos".
func EscolherColuna(cabecalho []string, termos []string) int {
	normalizadas := make([]string, len(cabecalho))
	for i, celula := range cabecalho {
		normalizadas[i] = NormalizarTexto(celula)
	}

	for _, termo := range termos {
		nt := NormalizarTexto(termo)
		if nt == "" {
			continue
		}
		for idx, nc := range normalizadas {
			if nc == nt {
				return idx
			}
			if len([]rune(nt)) > 2 && strings.Contains(nc, nt) {
				return idx
			}
		}
	}
	return ColunaAusente
}
