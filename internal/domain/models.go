// internal/domain/models.go
package domain

import "time"

// Tipos de movimentação de estoque.
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
)

// ItemEstoque representa uma linha consolidada do almoxarifado. O código é
// a chave de junção entre as planilhas e já chega normalizado (maiúsculas,
// sem espaços, dígito único com zero à esquerda).
type ItemEstoque struct {
	Codigo        string  `json:"codigo"`
	Descricao     string  `json:"descricao"`
	Equipamento   string  `json:"equipamento"`
	Local         string  `json:"local"`
	Fornecedor    string  `json:"fornecedor"`
	Quantidade    float64 `json:"quantidade"`
	Minimo        float64 `json:"minimo"`
	Unidade       string  `json:"unidade"`
	Categoria     string  `json:"categoria"`
	PrecoUnitario float64 `json:"preco_unitario"`
	ValorTotal    float64 `json:"valor_total"`
	Entradas      float64 `json:"entradas"`
	Saidas        float64 `json:"saidas"`
}

// Movimento é uma entrada ou saída individual. O ID é sintético
// ("{tipo}-{índice da linha}") e não é estável entre sincronizações.
type Movimento struct {
	ID            string    `json:"id"`
	Tipo          string    `json:"tipo"`
	Data          time.Time `json:"data"`
	Codigo        string    `json:"codigo"`
	Quantidade    float64   `json:"quantidade"`
	Fornecedor    string    `json:"fornecedor,omitempty"`
	PrecoUnitario float64   `json:"preco_unitario"`
	ValorTotal    float64   `json:"valor_total"`
	Responsavel   string    `json:"responsavel,omitempty"`
	Setor         string    `json:"setor,omitempty"`
	Perfil        string    `json:"perfil,omitempty"`
	Cor           string    `json:"cor,omitempty"`
}

// OrdemServico é uma OS de manutenção extraída da planilha de ordens.
// Inicio e Termino são opcionais; Abertura é obrigatória (linhas sem data de
// abertura legível são descartadas na origem).
type OrdemServico struct {
	ID            string     `json:"id"`
	Numero        string     `json:"numero"`
	Abertura      time.Time  `json:"abertura"`
	Inicio        *time.Time `json:"inicio,omitempty"`
	Termino       *time.Time `json:"termino,omitempty"`
	Profissional  string     `json:"profissional"`
	Equipamento   string     `json:"equipamento"`
	Setor         string     `json:"setor"`
	Status        string     `json:"status"`
	Horas         float64    `json:"horas"`
	Descricao     string     `json:"descricao"`
	MaquinaParada string     `json:"maquina_parada"` // "Sim" ou "Não"
}

// Perfil agrupa as URLs das planilhas publicadas de um almoxarifado.
// URLs vazias significam que o feed não está configurado para este perfil.
type Perfil struct {
	Nome        string `json:"nome"`
	URLEstoque  string `json:"url_estoque"`
	URLEntradas string `json:"url_entradas"`
	URLSaidas   string `json:"url_saidas"`
	URLOrdens   string `json:"url_ordens"`
}

// Snapshot é o resultado completo de um ciclo de sincronização. Cada ciclo
// recomputa tudo do zero e substitui o snapshot anterior de forma atômica.
type Snapshot struct {
	Itens      []ItemEstoque  `json:"itens"`
	Movimentos []Movimento    `json:"movimentos"`
	Ordens     []OrdemServico `json:"ordens"`
	GeradoEm   time.Time      `json:"gerado_em"`
	// FalhaComunicacao sinaliza que a planilha principal de estoque estava
	// configurada mas não retornou nada (rede, HTML de login ou cabeçalho
	// irreconhecível; a causa não é distinguida).
	FalhaComunicacao bool `json:"falha_comunicacao"`
}
