// internal/core/estoque/movimentos.go
package estoque

import (
	"fmt"
	"strings"

	"github.com/allex-sso/almoxpro-sub000/internal/core/planilha"
	"github.com/allex-sso/almoxpro-sub000/internal/domain"
)

var chavesCabecalhoMovimento = []string{"cod", "data"}

var (
	termosDataMovimento  = []string{"data"}
	termosQtdEntrada     = []string{"quantidade recebida", "qtd recebida", "recebida", "quantidade", "qtd"}
	termosQtdSaida       = []string{"quantidade retirada", "qtd retirada", "retirada", "quantidade", "qtd"}
	termosPrecoMovimento = []string{"preco unitario", "valor unitario", "preco"}
	termosTotalMovimento = []string{"valor total", "total"}
	termosResponsavel    = []string{"responsavel", "retirado por", "recebido por", "colaborador"}
	termosSetor          = []string{"setor", "departamento"}
	termosPerfil         = []string{"perfil"}
	termosCor            = []string{"cor"}
)

// ExtrairMovimentos converte o CSV de entradas ou saídas em movimentos. O
// mesmo formato tabular serve às duas direções: só muda o conjunto de
// termos da coluna de quantidade ("recebida" vs "retirada"). Linhas sem
// data legível ou com quantidade zero são ruído e nunca entram no dataset.
func ExtrairMovimentos(texto, tipo string) []domain.Movimento {
	linhas := planilha.DecodificarTabela(texto)
	cab := planilha.LocalizarCabecalho(linhas, chavesCabecalhoMovimento)
	if cab < 0 {
		return nil
	}
	cabecalho := linhas[cab]

	termosQtd := termosQtdEntrada
	if tipo == domain.TipoSaida {
		termosQtd = termosQtdSaida
	}

	idxData := planilha.EscolherColuna(cabecalho, termosDataMovimento)
	idxCodigo := planilha.EscolherColuna(cabecalho, termosCodigoItem)
	idxQuantidade := planilha.EscolherColuna(cabecalho, termosQtd)
	idxFornecedor := planilha.EscolherColuna(cabecalho, termosFornecedor)
	idxPreco := planilha.EscolherColuna(cabecalho, termosPrecoMovimento)
	idxTotal := planilha.EscolherColuna(cabecalho, termosTotalMovimento)
	idxResponsavel := planilha.EscolherColuna(cabecalho, termosResponsavel)
	idxSetor := planilha.EscolherColuna(cabecalho, termosSetor)
	idxPerfil := planilha.EscolherColuna(cabecalho, termosPerfil)
	idxCor := planilha.EscolherColuna(cabecalho, termosCor)

	var movimentos []domain.Movimento
	for i := cab + 1; i < len(linhas); i++ {
		linha := linhas[i]
		valor := func(idx int) string {
			if idx != planilha.ColunaAusente && idx < len(linha) {
				return strings.TrimSpace(linha[idx])
			}
			return ""
		}

		data, ok := planilha.ParseData(valor(idxData))
		if !ok {
			continue
		}
		quantidade := planilha.ParseNumero(valor(idxQuantidade))
		if quantidade == 0 {
			continue
		}

		movimentos = append(movimentos, domain.Movimento{
			// Índice da linha de dados: identidade sintética, válida só
			// dentro deste ciclo de sincronização.
			ID:            fmt.Sprintf("%s-%d", tipo, i-cab-1),
			Tipo:          tipo,
			Data:          data,
			Codigo:        planilha.NormalizarCodigo(valor(idxCodigo)),
			Quantidade:    quantidade,
			Fornecedor:    valor(idxFornecedor),
			PrecoUnitario: planilha.ParseNumero(valor(idxPreco)),
			ValorTotal:    planilha.ParseNumero(valor(idxTotal)),
			Responsavel:   valor(idxResponsavel),
			Setor:         valor(idxSetor),
			Perfil:        valor(idxPerfil),
			Cor:           valor(idxCor),
		})
	}
	return movimentos
}
