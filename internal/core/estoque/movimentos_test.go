package estoque

import (
	"testing"

	"github.com/allex-sso/almoxpro-sub000/internal/domain"
)

const csvEntradas = `Controle de Entradas

Data;Cód;Qtd Recebida;Fornecedor;Preço Unitário;Responsável
05/03/2024;05;10;Ferragens Silva;0,50;João
06/03/2024;10;0;Eletro Sul;3,20;Maria
data inválida;10;5;Eletro Sul;3,20;Maria
07/03/2024;10;5;Eletro Sul;3,20;Maria
`

func TestExtrairMovimentosEntrada(t *testing.T) {
	movimentos := ExtrairMovimentos(csvEntradas, domain.TipoEntrada)

	if len(movimentos) != 2 {
		t.Fatalf("esperava 2 movimentos, obteve %d", len(movimentos))
	}

	t.Run("campos do movimento", func(t *testing.T) {
		mov := movimentos[0]
		if mov.Tipo != domain.TipoEntrada {
			t.Errorf("tipo = %q", mov.Tipo)
		}
		if mov.Codigo != "05" {
			t.Errorf("código = %q, esperava \"05\"", mov.Codigo)
		}
		if mov.Quantidade != 10 {
			t.Errorf("quantidade = %v, esperava 10", mov.Quantidade)
		}
		if mov.PrecoUnitario != 0.50 {
			t.Errorf("preço = %v, esperava 0.50", mov.PrecoUnitario)
		}
		if mov.Responsavel != "João" {
			t.Errorf("responsável = %q", mov.Responsavel)
		}
	})

	t.Run("id sintético carrega o índice da linha de dados", func(t *testing.T) {
		if movimentos[0].ID != "entrada-0" {
			t.Errorf("id = %q, esperava \"entrada-0\"", movimentos[0].ID)
		}
		// As linhas descartadas (quantidade zero, data ilegível) ainda
		// consomem índice.
		if movimentos[1].ID != "entrada-3" {
			t.Errorf("id = %q, esperava \"entrada-3\"", movimentos[1].ID)
		}
	})
}

func TestExtrairMovimentosDescartes(t *testing.T) {
	t.Run("quantidade zero é ruído", func(t *testing.T) {
		texto := "Data;Cód;Qtd Recebida\n05/03/2024;05;0\n"
		if movs := ExtrairMovimentos(texto, domain.TipoEntrada); len(movs) != 0 {
			t.Errorf("esperava 0 movimentos, obteve %d", len(movs))
		}
	})

	t.Run("data ilegível descarta a linha", func(t *testing.T) {
		texto := "Data;Cód;Qtd Recebida\n31/13/2024;05;10\n"
		if movs := ExtrairMovimentos(texto, domain.TipoEntrada); len(movs) != 0 {
			t.Errorf("esperava 0 movimentos, obteve %d", len(movs))
		}
	})
}

func TestExtrairMovimentosSaida(t *testing.T) {
	texto := `Data;Cód;Qtd Retirada;Setor;Responsável
05/03/2024;05;2;Manutenção;Pedro
`
	movimentos := ExtrairMovimentos(texto, domain.TipoSaida)
	if len(movimentos) != 1 {
		t.Fatalf("esperava 1 movimento, obteve %d", len(movimentos))
	}

	mov := movimentos[0]
	if mov.ID != "saida-0" || mov.Tipo != domain.TipoSaida {
		t.Errorf("identidade errada: %q %q", mov.ID, mov.Tipo)
	}
	if mov.Quantidade != 2 {
		t.Errorf("quantidade = %v, esperava 2", mov.Quantidade)
	}
	if mov.Setor != "Manutenção" {
		t.Errorf("setor = %q", mov.Setor)
	}
}
