// internal/core/estoque/reconciliar.go
package estoque

import "github.com/allex-sso/almoxpro-sub000/internal/domain"

// reconciliar cruza os três feeds pelo código normalizado do item:
// 1. mapa de preços (último unitário positivo das entradas, completado
// pelo preço do próprio item quando positivo)
// 2. saídas recebem preço resolvido e valor total
// 3. itens recebem preço, valor total e acumulados de entradas/saídas
// 4. lista unificada: entradas seguidas das saídas, sem reordenar
func reconciliar(itens []domain.ItemEstoque, entradas, saidas []domain.Movimento) ([]domain.ItemEstoque, []domain.Movimento) {
	precos := make(map[string]float64)
	for _, mov := range entradas {
		if mov.PrecoUnitario > 0 {
			precos[mov.Codigo] = mov.PrecoUnitario
		}
	}
	for _, item := range itens {
		if _, ok := precos[item.Codigo]; !ok && item.PrecoUnitario > 0 {
			precos[item.Codigo] = item.PrecoUnitario
		}
	}

	for i := range saidas {
		preco := precos[saidas[i].Codigo]
		if preco == 0 {
			preco = saidas[i].PrecoUnitario
		}
		saidas[i].PrecoUnitario = preco
		saidas[i].ValorTotal = saidas[i].Quantidade * preco
	}

	entradasPorCodigo := make(map[string]float64)
	for _, mov := range entradas {
		entradasPorCodigo[mov.Codigo] += mov.Quantidade
	}
	saidasPorCodigo := make(map[string]float64)
	for _, mov := range saidas {
		saidasPorCodigo[mov.Codigo] += mov.Quantidade
	}

	for i := range itens {
		preco := precos[itens[i].Codigo]
		itens[i].PrecoUnitario = preco
		itens[i].ValorTotal = itens[i].Quantidade * preco
		itens[i].Entradas = entradasPorCodigo[itens[i].Codigo]
		itens[i].Saidas = saidasPorCodigo[itens[i].Codigo]
	}

	movimentos := make([]domain.Movimento, 0, len(entradas)+len(saidas))
	movimentos = append(movimentos, entradas...)
	movimentos = append(movimentos, saidas...)
	return itens, movimentos
}
