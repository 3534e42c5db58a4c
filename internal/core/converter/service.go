package converter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// Service converte uma planilha enviada por upload (.xlsx, .xls ou .csv)
// no mesmo texto CSV que alimenta o pipeline de ingestão.
type Service interface {
	PlanilhaParaCSV(arquivo io.Reader, nome string) (string, error)
}

type service struct{}

// NewService cria uma nova instância do serviço de conversão.
func NewService() Service {
	return &service{}
}

func (svc *service) PlanilhaParaCSV(arquivo io.Reader, nome string) (string, error) {
	ext := strings.ToLower(filepath.Ext(nome))
	switch ext {
	case ".xlsx":
		return svc.converterXLSX(arquivo)
	case ".xls":
		return svc.converterXLS(arquivo)
	case ".csv", ".txt":
		return svc.lerCSV(arquivo)
	default:
		return "", fmt.Errorf("formato de planilha não suportado: %s", ext)
	}
}

func (svc *service) converterXLSX(arquivo io.Reader) (string, error) {
	f, err := excelize.OpenReader(arquivo)
	if err != nil {
		return "", fmt.Errorf("erro ao abrir .xlsx: %w", err)
	}
	defer f.Close()

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	writer.Comma = ';'

	for _, nome := range f.GetSheetList() {
		linhas, err := f.GetRows(nome)
		if err != nil {
			continue
		}
		for _, linha := range linhas {
			if err := writer.Write(linha); err != nil {
				return "", err
			}
		}
	}

	writer.Flush()
	return buffer.String(), writer.Error()
}

func (svc *service) converterXLS(arquivo io.Reader) (string, error) {
	dados, err := io.ReadAll(arquivo)
	if err != nil {
		return "", err
	}

	workbook, err := xls.OpenReader(bytes.NewReader(dados))
	if err != nil {
		// Alguns .xls renomeados são na verdade .xlsx; tenta o outro leitor
		// antes de desistir.
		if _, errX := excelize.OpenReader(bytes.NewReader(dados)); errX == nil {
			return svc.converterXLSX(bytes.NewReader(dados))
		}
		return "", fmt.Errorf("erro ao abrir .xls: %w", err)
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	writer.Comma = ';'

	for _, sheet := range workbook.GetSheets() {
		for _, linha := range sheet.GetRows() {
			var registro []string
			for _, celula := range linha.GetCols() {
				registro = append(registro, celula.GetString())
			}
			if err := writer.Write(registro); err != nil {
				return "", err
			}
		}
	}

	writer.Flush()
	return buffer.String(), writer.Error()
}

// lerCSV repassa o CSV enviado, decodificando ISO-8859-1 quando o arquivo
// não é UTF-8 válido.
func (svc *service) lerCSV(arquivo io.Reader) (string, error) {
	dados, err := io.ReadAll(arquivo)
	if err != nil {
		return "", err
	}
	if utf8.Valid(dados) {
		return string(dados), nil
	}
	decodificado, err := charmap.ISO8859_1.NewDecoder().Bytes(dados)
	if err != nil {
		return string(dados), nil
	}
	return string(decodificado), nil
}
