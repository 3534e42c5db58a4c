// internal/core/estoque/client.go
package estoque

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// BuscadorCSV abstrai a busca do texto CSV de um feed publicado. O retorno
// vazio sem erro significa "sem dados" (corpo vazio ou página HTML de
// login/redirect no lugar do CSV).
type BuscadorCSV interface {
	BuscarCSV(ctx context.Context, endereco string) (string, error)
}

// Modelo de exportação usado quando o perfil guarda só o identificador da
// planilha publicada, sem esquema.
const modeloExportacao = "https://docs.google.com/spreadsheets/d/%s/export?format=csv"

type buscadorHTTP struct {
	cliente *http.Client
}

// NewBuscadorHTTP cria o buscador de produção sobre net/http.
func NewBuscadorHTTP() BuscadorCSV {
	return &buscadorHTTP{cliente: &http.Client{Timeout: 30 * time.Second}}
}

func (b *buscadorHTTP) BuscarCSV(ctx context.Context, endereco string) (string, error) {
	completo, err := montarURL(endereco)
	if err != nil {
		return "", fmt.Errorf("endereço de planilha inválido: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, completo, nil)
	if err != nil {
		return "", err
	}

	resp, err := b.cliente.Do(req)
	if err != nil {
		return "", fmt.Errorf("falha de rede ao buscar planilha: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("resposta %d ao buscar planilha", resp.StatusCode)
	}

	bruto, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	texto := decodificarCorpo(bruto)
	if strings.TrimSpace(texto) == "" || pareceHTML(texto) {
		return "", nil
	}
	return texto, nil
}

// montarURL expande um identificador puro para o modelo de exportação
// publicada e anexa um parâmetro anti-cache a cada requisição.
func montarURL(endereco string) (string, error) {
	e := strings.TrimSpace(endereco)
	if !strings.Contains(e, "://") {
		e = fmt.Sprintf(modeloExportacao, e)
	}
	u, err := url.Parse(e)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("cb", strconv.FormatInt(time.Now().UnixNano(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// decodificarCorpo assume UTF-8 e cai para ISO-8859-1 quando os bytes não
// formam UTF-8 válido, caso das exportações mais antigas.
func decodificarCorpo(bruto []byte) string {
	if utf8.Valid(bruto) {
		return string(bruto)
	}
	decodificado, err := charmap.ISO8859_1.NewDecoder().Bytes(bruto)
	if err != nil {
		return string(bruto)
	}
	return string(decodificado)
}

// pareceHTML detecta uma página de autenticação/redirect devolvida no lugar
// do CSV publicado.
func pareceHTML(texto string) bool {
	p := strings.ToLower(strings.TrimSpace(texto))
	return strings.HasPrefix(p, "<!doctype html") || strings.HasPrefix(p, "<html")
}
