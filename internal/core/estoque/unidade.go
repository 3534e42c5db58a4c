package estoque

import (
	"strings"

	"github.com/allex-sso/almoxpro-sub000/internal/core/planilha"
	"github.com/schollz/closestmatch"
)

// Vocabulário canônico de unidades de medida do almoxarifado. Os nomes por
// extenso e abreviações usuais das planilhas são reduzidos a ele; o que não
// for reconhecido cai na abreviação de duas letras do próprio valor.
var sinonimosUnidade = map[string]string{
	"un":         "un",
	"und":        "un",
	"unid":       "un",
	"unidade":    "un",
	"unidades":   "un",
	"u":          "un",
	"mt":         "mt",
	"m":          "mt",
	"metro":      "mt",
	"metros":     "mt",
	"pc":         "pç",
	"pca":        "pç",
	"pcs":        "pç",
	"peca":       "pç",
	"pecas":      "pç",
	"kg":         "kg",
	"kgs":        "kg",
	"kilo":       "kg",
	"quilo":      "kg",
	"quilos":     "kg",
	"quilograma": "kg",
	"lt":         "lt",
	"l":          "lt",
	"litro":      "lt",
	"litros":     "lt",
}

var matcherUnidade = closestmatch.New(chavesSinonimos(), []int{2, 3})

func chavesSinonimos() []string {
	chaves := make([]string, 0, len(sinonimosUnidade))
	for chave := range sinonimosUnidade {
		chaves = append(chaves, chave)
	}
	return chaves
}

// CanonicalizarUnidade reduz o texto livre da coluna de unidade ao
// vocabulário canônico. O matcher aproximado cobre erros de digitação
// ("metrro", "litrs") e só é aceito quando o melhor candidato começa
// pelas mesmas duas letras do valor; senão vale o fallback de duas letras.
func CanonicalizarUnidade(valor string) string {
	n := strings.Trim(planilha.NormalizarTexto(valor), ".")
	if n == "" {
		return "un"
	}
	if canonica, ok := sinonimosUnidade[n]; ok {
		return canonica
	}

	if len(n) >= 4 {
		aproximada := matcherUnidade.Closest(n)
		if len(aproximada) >= 2 && strings.HasPrefix(n, aproximada[:2]) {
			if canonica, ok := sinonimosUnidade[aproximada]; ok {
				return canonica
			}
		}
	}

	runas := []rune(n)
	if len(runas) > 2 {
		runas = runas[:2]
	}
	return string(runas)
}
