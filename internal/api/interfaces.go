package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/fittrack/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Pinger is the slice of the database connection the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}
