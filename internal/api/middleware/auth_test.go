package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var segredoTeste = []byte("segredo-de-teste")

func gerarToken(t *testing.T, roles []string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"username": "almoxarife",
		"roles":    roles,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	assinado, err := token.SignedString(segredoTeste)
	if err != nil {
		t.Fatalf("erro ao assinar token: %v", err)
	}
	return assinado
}

func routerProtegido() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	grupo := router.Group("/")
	grupo.Use(AuthMiddleware(segredoTeste))
	grupo.POST("/sync", PermissionMiddleware("almox.sync"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	grupo.GET("/itens", PermissionMiddleware("almox.leitura"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestPermissionMiddleware(t *testing.T) {
	router := routerProtegido()

	casos := []struct {
		nome   string
		metodo string
		rota   string
		roles  []string
		status int
	}{
		{"sync com permissao", "POST", "/sync", []string{"almox.leitura", "almox.sync"}, http.StatusOK},
		{"sync sem permissao", "POST", "/sync", []string{"almox.leitura"}, http.StatusForbidden},
		{"leitura com permissao", "GET", "/itens", []string{"almox.leitura"}, http.StatusOK},
		{"leitura sem permissao", "GET", "/itens", []string{"almox.sync"}, http.StatusForbidden},
		{"token sem roles", "GET", "/itens", nil, http.StatusForbidden},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			req := httptest.NewRequest(caso.metodo, caso.rota, nil)
			req.Header.Set("Authorization", "Bearer "+gerarToken(t, caso.roles))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != caso.status {
				t.Errorf("status = %d, esperado %d", rec.Code, caso.status)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	router := routerProtegido()

	t.Run("sem token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/itens", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, esperado %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("token com assinatura errada", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"username": "almoxarife",
			"exp":      time.Now().Add(time.Hour).Unix(),
		})
		assinado, err := token.SignedString([]byte("outro-segredo"))
		if err != nil {
			t.Fatalf("erro ao assinar token: %v", err)
		}
		req := httptest.NewRequest("GET", "/itens", nil)
		req.Header.Set("Authorization", "Bearer "+assinado)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, esperado %d", rec.Code, http.StatusUnauthorized)
		}
	})
}
