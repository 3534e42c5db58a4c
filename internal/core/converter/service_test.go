package converter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestPlanilhaParaCSVXlsx(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	valores := [][]interface{}{
		{"Código", "Descrição", "Quantidade"},
		{"01", "Parafuso", 10},
		{"02", "Porca", 5},
	}
	for i, linha := range valores {
		for j, v := range linha {
			celula, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue("Sheet1", celula, v); err != nil {
				t.Fatal(err)
			}
		}
	}

	var buffer bytes.Buffer
	if err := f.Write(&buffer); err != nil {
		t.Fatal(err)
	}

	texto, err := NewService().PlanilhaParaCSV(&buffer, "estoque.xlsx")
	if err != nil {
		t.Fatalf("erro na conversão: %v", err)
	}

	if !strings.Contains(texto, "Código;Descrição;Quantidade") {
		t.Errorf("cabeçalho não convertido: %q", texto)
	}
	if !strings.Contains(texto, "01;Parafuso;10") {
		t.Errorf("linha de dados não convertida: %q", texto)
	}
}

func TestPlanilhaParaCSVPassagemDireta(t *testing.T) {
	t.Run("CSV em UTF-8", func(t *testing.T) {
		entrada := "Código;Descrição\n01;Peça\n"
		texto, err := NewService().PlanilhaParaCSV(strings.NewReader(entrada), "estoque.csv")
		if err != nil {
			t.Fatal(err)
		}
		if texto != entrada {
			t.Errorf("CSV alterado na passagem: %q", texto)
		}
	})

	t.Run("CSV em ISO-8859-1", func(t *testing.T) {
		// "Peça" com ç em Latin-1 (0xE7).
		entrada := []byte{'P', 'e', 0xE7, 'a', ';', '1', '\n'}
		texto, err := NewService().PlanilhaParaCSV(bytes.NewReader(entrada), "estoque.csv")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(texto, "Peça") {
			t.Errorf("Latin-1 não decodificado: %q", texto)
		}
	})
}

func TestPlanilhaParaCSVFormatoInvalido(t *testing.T) {
	if _, err := NewService().PlanilhaParaCSV(strings.NewReader("x"), "estoque.pdf"); err == nil {
		t.Error("esperava erro para extensão não suportada")
	}
}
