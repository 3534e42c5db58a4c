// internal/core/estoque/ordens.go
package estoque

import (
	"fmt"
	"strings"
	"time"

	"github.com/allex-sso/almoxpro-sub000/internal/core/planilha"
	"github.com/allex-sso/almoxpro-sub000/internal/domain"
)

var chavesCabecalhoOrdens = []string{"abertura", "data"}

var (
	// "os" com dois caracteres só casa por igualdade exata, de propósito:
	// como substring capturaria cabeçalhos como "custos".
	termosNumeroOS     = []string{"numero da os", "numero", "os", "nº"}
	termosAbertura     = []string{"data de abertura", "abertura", "data"}
	termosInicio       = []string{"inicio"}
	termosTermino      = []string{"termino", "conclusao", "encerramento", "fim"}
	termosProfissional = []string{"profissional", "tecnico", "executante", "responsavel"}
	termosEquipOS      = []string{"equipamento", "maquina", "tag"}
	termosStatus       = []string{"status", "situacao"}
	termosHoras        = []string{"horas", "tempo", "duracao"}
	termosDescOS       = []string{"descricao", "servico", "atividade"}
	termosParada       = []string{"parada", "parou"}
)

// Tokens afirmativos do campo "máquina parada", comparados já normalizados.
var tokensAfirmativos = map[string]bool{"sim": true, "s": true, "1": true}

// ExtrairOrdens converte o CSV de ordens de serviço. A data de abertura é
// obrigatória por linha; início e término são opcionais. O campo de horas
// aceita "HH:MM:SS", decimal ou o inteiro HHMM empacotado das planilhas
// antigas.
func ExtrairOrdens(texto string) []domain.OrdemServico {
	linhas := planilha.DecodificarTabela(texto)
	cab := planilha.LocalizarCabecalho(linhas, chavesCabecalhoOrdens)
	if cab < 0 {
		return nil
	}
	cabecalho := linhas[cab]

	idxNumero := planilha.EscolherColuna(cabecalho, termosNumeroOS)
	idxAbertura := planilha.EscolherColuna(cabecalho, termosAbertura)
	idxInicio := planilha.EscolherColuna(cabecalho, termosInicio)
	idxTermino := planilha.EscolherColuna(cabecalho, termosTermino)
	idxProfissional := planilha.EscolherColuna(cabecalho, termosProfissional)
	idxEquipamento := planilha.EscolherColuna(cabecalho, termosEquipOS)
	idxSetor := planilha.EscolherColuna(cabecalho, termosSetor)
	idxStatus := planilha.EscolherColuna(cabecalho, termosStatus)
	idxHoras := planilha.EscolherColuna(cabecalho, termosHoras)
	idxDescricao := planilha.EscolherColuna(cabecalho, termosDescOS)
	idxParada := planilha.EscolherColuna(cabecalho, termosParada)

	var ordens []domain.OrdemServico
	for i := cab + 1; i < len(linhas); i++ {
		linha := linhas[i]
		valor := func(idx int) string {
			if idx != planilha.ColunaAusente && idx < len(linha) {
				return strings.TrimSpace(linha[idx])
			}
			return ""
		}

		abertura, ok := planilha.ParseData(valor(idxAbertura))
		if !ok {
			continue
		}

		parada := "Não"
		if tokensAfirmativos[planilha.NormalizarTexto(valor(idxParada))] {
			parada = "Sim"
		}

		ordens = append(ordens, domain.OrdemServico{
			ID:            fmt.Sprintf("os-%d", i-cab-1),
			Numero:        valor(idxNumero),
			Abertura:      abertura,
			Inicio:        dataOpcional(valor(idxInicio)),
			Termino:       dataOpcional(valor(idxTermino)),
			Profissional:  valor(idxProfissional),
			Equipamento:   valor(idxEquipamento),
			Setor:         valor(idxSetor),
			Status:        valor(idxStatus),
			Horas:         planilha.DecodificarHoras(valor(idxHoras)),
			Descricao:     valor(idxDescricao),
			MaquinaParada: parada,
		})
	}
	return ordens
}

func dataOpcional(valor string) *time.Time {
	if t, ok := planilha.ParseData(valor); ok {
		return &t
	}
	return nil
}
