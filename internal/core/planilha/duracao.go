// internal/core/planilha/duracao.go
package planilha

import (
	"math"
	"strings"
)

// ParseDuracao converte um campo de duração em horas decimais. Strings com
// ":" são lidas como "H:M[:S]"; qualquer outra coisa passa pelo parser
// numérico comum ("1,5" -> 1.5).
func ParseDuracao(val string) float64 {
	s := strings.TrimSpace(val)
	if !strings.Contains(s, ":") {
		return ParseNumero(s)
	}

	partes := strings.Split(s, ":")
	horas := ParseNumero(partes[0])
	if len(partes) > 1 {
		horas += ParseNumero(partes[1]) / 60.0
	}
	if len(partes) > 2 {
		horas += ParseNumero(partes[2]) / 3600.0
	}
	return horas
}

// DecodificarHoras interpreta o campo de tempo decorrido das ordens de
// serviço, que aparece ora como "HH:MM:SS", ora como decimal, ora como um
// inteiro HHMM empacotado ("130" = 1h30). Um inteiro >= 100 é tratado como
// horas/minutos empacotados quando o componente de minutos é < 60; caso
// contrário o valor é horas multiplicadas por 100.
func DecodificarHoras(val string) float64 {
	if strings.Contains(val, ":") {
		return ParseDuracao(val)
	}

	n := ParseNumero(val)
	if n >= 100 && n == math.Trunc(n) {
		minutos := int64(n) % 100
		if minutos < 60 {
			return float64(int64(n)/100) + float64(minutos)/60.0
		}
		return n / 100.0
	}
	return n
}
