// internal/core/auth/service.go
package auth

import (
	"context"
	"errors"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/iterator"
)

// A chave secreta é lida de variável de ambiente.
var jwtSecret = []byte(os.Getenv("JWT_SECRET"))

type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type service struct {
	db     *firestore.Client
	logger *zap.Logger
}

func NewService(db *firestore.Client, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{db: db, logger: logger}
}

// User é a estrutura de um usuário do almoxarifado no Firestore. Roles
// carrega as permissões ("almox.leitura", "almox.sync").
type User struct {
	Username     string   `firestore:"username"`
	PasswordHash string   `firestore:"passwordHash"`
	Roles        []string `firestore:"roles"`
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	query := s.db.Collection("users").Where("username", "==", username).Limit(1).Documents(ctx)
	defer query.Stop()

	doc, err := query.Next()
	if err == iterator.Done {
		return "", errors.New("usuário ou senha inválidos")
	}
	if err != nil {
		s.logger.Error("erro ao consultar usuários no Firestore", zap.Error(err))
		return "", errors.New("erro ao consultar o banco de dados")
	}

	var user User
	if err := doc.DataTo(&user); err != nil {
		return "", errors.New("erro ao ler dados do usuário")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("usuário ou senha inválidos")
	}

	claims := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": user.Username,
		"roles":    user.Roles,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	})

	tokenString, err := claims.SignedString(jwtSecret)
	if err != nil {
		return "", errors.New("erro ao gerar token de acesso")
	}

	return tokenString, nil
}
