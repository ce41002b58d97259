package middleware

import (
	"context"
	"lottery_backend/pkg/token"
	"net/http"
	"strings"
)

type ctxKey struct{}

// Auth - проверяет bearer токен и кладет адрес вызывающего в контекст
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(tokenStr, secretKey)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAddress(r.Context(), claims.Subject)))
		})
	}
}

// WithAddress - контекст с адресом вызывающего
func WithAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, ctxKey{}, address)
}

// AddressFromContext - адрес вызывающего из контекста
func AddressFromContext(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(ctxKey{}).(string)
	return address, ok && address != ""
}
