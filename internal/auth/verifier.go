// Package auth проверяет токен сессии, выданный внешним API,
// и извлекает из него данные пользователя.
package auth

import (
	"fmt"

	"github.com/InQaaaaGit/trunc_web/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier проверяет подпись токена и возвращает его claims.
// Реализацию можно заменить (например, на асимметричную) без изменения вызывающего кода.
type TokenVerifier interface {
	Verify(token, secret string) (*models.UserClaims, error)
}

// HMACVerifier проверяет токены, подписанные общим секретом (HS256/HS384/HS512)
type HMACVerifier struct{}

// NewHMACVerifier создает верификатор для симметричных подписей
func NewHMACVerifier() *HMACVerifier {
	return &HMACVerifier{}
}

// Verify разбирает токен, проверяет подпись, сроки действия и наличие userID
func (v *HMACVerifier) Verify(token, secret string) (*models.UserClaims, error) {
	claims := &models.UserClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		}),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
