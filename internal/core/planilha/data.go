// internal/core/planilha/data.go
package planilha

import (
	"strconv"
	"strings"
	"time"
)

// Serial de planilha: dias contados desde 1899-12-30, ou seja, 25569 dias
// antes da época Unix.
const deslocamentoSerial = 25569.0

const msPorDia = 86400000.0

// Anos fora desta faixa são considerados lixo de digitação e a data é
// tratada como ausente.
const (
	anoMinimo = 1990
	anoMaximo = 2100
)

var layoutsISO = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// ParseData interpreta uma data vinda de célula de planilha. Aceita, nesta
// ordem: serial numérico de planilha (string puramente numérica, sem barra),
// "DD/MM/AAAA" com hora opcional "HH:MM:SS", e formatos ISO como último
// recurso. O segundo retorno é false quando a data é ausente ou ilegível.
func ParseData(val string) (time.Time, bool) {
	s := strings.TrimSpace(val)
	if s == "" {
		return time.Time{}, false
	}

	if !strings.Contains(s, "/") && ehNumerico(s) {
		serial, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, false
		}
		ms := (serial - deslocamentoSerial) * msPorDia
		return validarAno(time.UnixMilli(int64(ms)).UTC())
	}

	if strings.Contains(s, "/") {
		return parseDataBR(s)
	}

	for _, layout := range layoutsISO {
		if t, err := time.Parse(layout, s); err == nil {
			return validarAno(t.UTC())
		}
	}
	return time.Time{}, false
}

// parseDataBR trata "DD/MM/AAAA[ HH:MM:SS]". Anos de cinco dígitos (um
// dígito extra digitado por engano, ex.: "20244") são recuperados removendo
// um dígito por vez até sobrar um ano plausível.
func parseDataBR(s string) (time.Time, bool) {
	campos := strings.Fields(s)
	partes := strings.Split(campos[0], "/")
	if len(partes) != 3 {
		return time.Time{}, false
	}

	dia, errD := strconv.Atoi(strings.TrimSpace(partes[0]))
	mes, errM := strconv.Atoi(strings.TrimSpace(partes[1]))
	if errD != nil || errM != nil {
		return time.Time{}, false
	}

	ano, ok := parseAno(strings.TrimSpace(partes[2]))
	if !ok {
		return time.Time{}, false
	}

	var hora, minuto, segundo int
	if len(campos) > 1 {
		relogio := strings.Split(campos[1], ":")
		if len(relogio) > 0 {
			hora, _ = strconv.Atoi(relogio[0])
		}
		if len(relogio) > 1 {
			minuto, _ = strconv.Atoi(relogio[1])
		}
		if len(relogio) > 2 {
			segundo, _ = strconv.Atoi(relogio[2])
		}
	}

	t := time.Date(ano, time.Month(mes), dia, hora, minuto, segundo, 0, time.UTC)
	// time.Date normaliza 31/13 para o ano seguinte; a ida-e-volta detecta
	// dia ou mês inválidos.
	if t.Year() != ano || int(t.Month()) != mes || t.Day() != dia {
		return time.Time{}, false
	}
	return validarAno(t)
}

func parseAno(s string) (int, bool) {
	if len(s) == 5 {
		// O dígito intruso costuma ser repetição no fim ("20244"); tenta
		// remover de trás para frente.
		for i := len(s) - 1; i >= 0; i-- {
			candidato, err := strconv.Atoi(s[:i] + s[i+1:])
			if err == nil && candidato >= anoMinimo && candidato <= anoMaximo {
				return candidato, true
			}
		}
		return 0, false
	}
	ano, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return ano, true
}

func validarAno(t time.Time) (time.Time, bool) {
	if t.Year() < anoMinimo || t.Year() > anoMaximo {
		return time.Time{}, false
	}
	return t, true
}

func ehNumerico(s string) bool {
	pontos := 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '-' && i == 0:
		case r == '.':
			pontos++
			if pontos > 1 {
				return false
			}
		default:
			return false
		}
	}
	return strings.Trim(s, "-.") != ""
}
