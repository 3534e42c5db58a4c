// internal/core/estoque/inventario.go
package estoque

import (
	"strings"

	"github.com/allex-sso/almoxpro-sub000/internal/core/planilha"
	"github.com/allex-sso/almoxpro-sub000/internal/domain"
)

// Palavras-chave que identificam a linha de cabeçalho da planilha de
// estoque em meio a títulos e legendas.
var chavesCabecalhoEstoque = []string{"cod", "descricao", "material"}

// Termos candidatos, em ordem de prioridade, para cada campo canônico do
// estoque. A lista é deliberadamente redundante: as planilhas são editadas
// à mão e os cabeçalhos mudam de nome entre almoxarifados.
var (
	termosCodigoItem  = []string{"codigo", "cod"}
	termosDescricao   = []string{"descricao", "material", "produto"}
	termosEquipamento = []string{"equipamento", "tag"}
	termosLocal       = []string{"localizacao", "local", "prateleira", "endereco"}
	termosFornecedor  = []string{"fornecedor", "fabricante"}
	termosQuantidade  = []string{"quantidade atual", "quantidade", "qtd", "estoque atual", "saldo"}
	termosMinimo      = []string{"quantidade minima", "minimo", "min"}
	termosUnidade     = []string{"unidade", "unid", "und", "um"}
	termosCategoria   = []string{"categoria", "grupo", "tipo"}
	termosPrecoItem   = []string{"preco unitario", "valor unitario", "preco", "custo"}
)

// ExtrairItens converte o texto CSV da planilha de estoque em itens. A
// coluna de código é obrigatória; sem ela o feed inteiro vale vazio.
// Linhas sem código são descartadas e códigos repetidos colapsam no mesmo
// item com a última linha vencendo.
func ExtrairItens(texto string) []domain.ItemEstoque {
	linhas := planilha.DecodificarTabela(texto)
	cab := planilha.LocalizarCabecalho(linhas, chavesCabecalhoEstoque)
	if cab < 0 {
		return nil
	}
	cabecalho := linhas[cab]

	idxCodigo := planilha.EscolherColuna(cabecalho, termosCodigoItem)
	if idxCodigo == planilha.ColunaAusente {
		return nil
	}
	idxDescricao := planilha.EscolherColuna(cabecalho, termosDescricao)
	idxEquipamento := planilha.EscolherColuna(cabecalho, termosEquipamento)
	idxLocal := planilha.EscolherColuna(cabecalho, termosLocal)
	idxFornecedor := planilha.EscolherColuna(cabecalho, termosFornecedor)
	idxQuantidade := planilha.EscolherColuna(cabecalho, termosQuantidade)
	idxMinimo := planilha.EscolherColuna(cabecalho, termosMinimo)
	idxUnidade := planilha.EscolherColuna(cabecalho, termosUnidade)
	idxCategoria := planilha.EscolherColuna(cabecalho, termosCategoria)
	idxPreco := planilha.EscolherColuna(cabecalho, termosPrecoItem)

	var itens []domain.ItemEstoque
	posPorCodigo := make(map[string]int)

	for i := cab + 1; i < len(linhas); i++ {
		linha := linhas[i]
		valor := func(idx int) string {
			if idx != planilha.ColunaAusente && idx < len(linha) {
				return strings.TrimSpace(linha[idx])
			}
			return ""
		}

		codigo := planilha.NormalizarCodigo(valor(idxCodigo))
		if codigo == "" {
			continue
		}

		item := domain.ItemEstoque{
			Codigo:        codigo,
			Descricao:     valor(idxDescricao),
			Equipamento:   valor(idxEquipamento),
			Local:         valor(idxLocal),
			Fornecedor:    valor(idxFornecedor),
			Quantidade:    planilha.ParseNumero(valor(idxQuantidade)),
			Minimo:        planilha.ParseNumero(valor(idxMinimo)),
			Unidade:       CanonicalizarUnidade(valor(idxUnidade)),
			Categoria:     valor(idxCategoria),
			PrecoUnitario: planilha.ParseNumero(valor(idxPreco)),
		}

		if pos, ok := posPorCodigo[codigo]; ok {
			itens[pos] = item
		} else {
			posPorCodigo[codigo] = len(itens)
			itens = append(itens, item)
		}
	}
	return itens
}
