package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// CallerClaims - claims токена вызывающего. Subject - адрес
type CallerClaims struct {
	jwt.RegisteredClaims
}
