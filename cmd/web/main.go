// cmd/web/main.go
package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/allex-sso/almoxpro-sub000/internal/api/handlers"
	"github.com/allex-sso/almoxpro-sub000/internal/api/middleware"
	"github.com/allex-sso/almoxpro-sub000/internal/api/responses"
	"github.com/allex-sso/almoxpro-sub000/internal/core/auth"
	"github.com/allex-sso/almoxpro-sub000/internal/core/converter"
	"github.com/allex-sso/almoxpro-sub000/internal/core/estoque"
	"github.com/allex-sso/almoxpro-sub000/internal/domain"
	"github.com/gin-gonic/gin"
)

// initFirestoreClient inicializa o cliente Firestore do banco de usuários.
func initFirestoreClient(ctx context.Context) *firestore.Client {
	projectID := "almoxpro-db"
	databaseID := "almoxpro-db"
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		log.Fatalf("Erro ao inicializar cliente Firestore para o banco '%s': %v\n", databaseID, err)
	}
	log.Printf("Conectado com sucesso ao Firestore, banco de dados: %s", databaseID)
	return client
}

// perfilPadrao monta o perfil de feeds a partir do ambiente. A configuração
// de perfis é responsabilidade da camada externa; o núcleo só recebe o
// valor pronto.
func perfilPadrao() domain.Perfil {
	return domain.Perfil{
		Nome:        os.Getenv("ALMOX_PERFIL"),
		URLEstoque:  os.Getenv("ALMOX_URL_ESTOQUE"),
		URLEntradas: os.Getenv("ALMOX_URL_ENTRADAS"),
		URLSaidas:   os.Getenv("ALMOX_URL_SAIDAS"),
		URLOrdens:   os.Getenv("ALMOX_URL_ORDENS"),
	}
}

func main() {
	logger := responses.InitLogger()
	ctx := context.Background()

	firestoreClient := initFirestoreClient(ctx)
	defer firestoreClient.Close()

	estoqueService := estoque.NewService(estoque.NewBuscadorHTTP(), logger)
	converterService := converter.NewService()
	authService := auth.NewService(firestoreClient, logger)

	estoqueHandler := handlers.NewEstoqueHandler(estoqueService, converterService, perfilPadrao())
	authHandler := handlers.NewAuthHandler(authService)

	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/login", authHandler.Login)
		protected := apiV1.Group("/")
		protected.Use(middleware.AuthMiddleware(nil))
		{
			protected.POST("/sync", middleware.PermissionMiddleware("almox.sync"), estoqueHandler.HandleSincronizar)
			protected.GET("/itens", middleware.PermissionMiddleware("almox.leitura"), estoqueHandler.HandleItens)
			protected.GET("/movimentos", middleware.PermissionMiddleware("almox.leitura"), estoqueHandler.HandleMovimentos)
			protected.GET("/ordens", middleware.PermissionMiddleware("almox.leitura"), estoqueHandler.HandleOrdens)
			protected.POST("/ingest/planilha", middleware.PermissionMiddleware("almox.sync"), estoqueHandler.HandleIngestPlanilha)
		}
	}
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Servidor iniciado e escutando na porta %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Falha ao iniciar o servidor: ", err)
	}
}
