package api

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/limbo/toki/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(account *entity.Account) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// QuoteProvider serves motivational quotes.
type QuoteProvider interface {
	Random() string
	Add(quote string) bool
}
