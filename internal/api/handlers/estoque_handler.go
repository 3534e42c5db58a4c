// internal/api/handlers/estoque_handler.go
package handlers

import (
	"net/http"

	"github.com/allex-sso/almoxpro-sub000/internal/api/responses"
	"github.com/allex-sso/almoxpro-sub000/internal/core/converter"
	"github.com/allex-sso/almoxpro-sub000/internal/core/estoque"
	"github.com/allex-sso/almoxpro-sub000/internal/domain"
	"github.com/gin-gonic/gin"
)

// EstoqueHandler expõe o ciclo de sincronização e as coleções do último
// snapshot para a camada de apresentação.
type EstoqueHandler struct {
	service   estoque.Service
	conversor converter.Service
	perfil    domain.Perfil
}

func NewEstoqueHandler(service estoque.Service, conversor converter.Service, perfil domain.Perfil) *EstoqueHandler {
	return &EstoqueHandler{service: service, conversor: conversor, perfil: perfil}
}

// HandleSincronizar dispara um ciclo completo de sincronização com o perfil
// configurado no servidor. Um perfil alternativo pode vir no corpo da
// requisição.
func (h *EstoqueHandler) HandleSincronizar(c *gin.Context) {
	perfil := h.perfil
	if c.Request.ContentLength > 0 {
		var corpo domain.Perfil
		if err := c.ShouldBindJSON(&corpo); err != nil {
			responses.Error(c, http.StatusBadRequest, "Perfil inválido no corpo da requisição")
			return
		}
		perfil = corpo
	}

	snap := h.service.Sincronizar(c.Request.Context(), perfil)
	responses.Success(c, snap, "Sincronização concluída")
}

// HandleItens devolve os itens reconciliados do último snapshot.
func (h *EstoqueHandler) HandleItens(c *gin.Context) {
	responses.Success(c, h.service.Snapshot().Itens, "")
}

// HandleMovimentos devolve a lista unificada de entradas e saídas.
func (h *EstoqueHandler) HandleMovimentos(c *gin.Context) {
	responses.Success(c, h.service.Snapshot().Movimentos, "")
}

// HandleOrdens devolve as ordens de serviço do último snapshot.
func (h *EstoqueHandler) HandleOrdens(c *gin.Context) {
	responses.Success(c, h.service.Snapshot().Ordens, "")
}

// HandleIngestPlanilha recebe uma planilha por upload (.xlsx, .xls ou
// .csv), converte para CSV e passa o resultado pelo mesmo pipeline dos
// feeds publicados. O campo "feed" escolhe o extrator: estoque, entradas,
// saidas ou ordens. Os registros extraídos voltam na resposta sem alterar
// o snapshot corrente.
func (h *EstoqueHandler) HandleIngestPlanilha(c *gin.Context) {
	arquivoHeader, err := c.FormFile("planilha")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Arquivo de planilha não encontrado ou inválido")
		return
	}

	arquivo, err := arquivoHeader.Open()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Não foi possível abrir a planilha enviada")
		return
	}
	defer arquivo.Close()

	texto, err := h.conversor.PlanilhaParaCSV(arquivo, arquivoHeader.Filename)
	if err != nil {
		responses.Error(c, http.StatusUnprocessableEntity, "Erro ao converter a planilha", err.Error())
		return
	}

	switch c.PostForm("feed") {
	case "estoque":
		responses.Success(c, estoque.ExtrairItens(texto), "Planilha de estoque processada")
	case "entradas":
		responses.Success(c, estoque.ExtrairMovimentos(texto, domain.TipoEntrada), "Planilha de entradas processada")
	case "saidas":
		responses.Success(c, estoque.ExtrairMovimentos(texto, domain.TipoSaida), "Planilha de saídas processada")
	case "ordens":
		responses.Success(c, estoque.ExtrairOrdens(texto), "Planilha de ordens processada")
	default:
		responses.Error(c, http.StatusBadRequest, "Campo 'feed' deve ser estoque, entradas, saidas ou ordens")
	}
}
