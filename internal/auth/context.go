package auth

import (
	"context"

	"github.com/InQaaaaGit/trunc_web/internal/models"
)

// contextKey используется как ключ для значений в контексте
type contextKey string

// ClaimsKey ключ для хранения claims пользователя в контексте
const ClaimsKey contextKey = "user_claims"

// WithClaims добавляет claims в контекст
func WithClaims(ctx context.Context, claims *models.UserClaims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

// ClaimsFromContext извлекает claims, добавленные SessionGate
func ClaimsFromContext(ctx context.Context) (*models.UserClaims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*models.UserClaims)
	return claims, ok && claims != nil
}
