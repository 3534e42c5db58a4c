// internal/api/responses/responses.go
package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// APIResponse define o envelope padrão das respostas da API.
type APIResponse struct {
	Status  string      `json:"status"` // "success" ou "error"
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// InitLogger inicializa o logger estruturado das respostas da API e o
// devolve para reuso pelos serviços.
func InitLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		return logger
	}
	logger = l
	return logger
}

// Success envia uma resposta de sucesso com os dados e a mensagem dados.
func Success(c *gin.Context, data interface{}, message string) {
	resp := APIResponse{Status: "success", Data: data, Message: message}
	c.JSON(http.StatusOK, resp)
	logger.Info("API success", zap.String("path", c.Request.URL.Path), zap.Int("status", http.StatusOK))
}

// Error envia uma resposta de erro com o código, a mensagem e detalhes
// opcionais.
func Error(c *gin.Context, code int, message string, errs ...string) {
	resp := APIResponse{Status: "error", Message: message, Errors: errs}
	c.JSON(code, resp)
	logger.Error("API error", zap.String("path", c.Request.URL.Path), zap.Int("status", code), zap.Strings("errors", errs))
}
