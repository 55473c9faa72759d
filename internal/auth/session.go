package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/InQaaaaGit/trunc_web/internal/models"
)

// CookieName имя cookie с токеном сессии
const CookieName = "token"

var (
	// ErrNoSession возвращается, когда cookie с токеном нет или она пустая
	ErrNoSession = errors.New("no session found")
	// ErrSecretMissing возвращается, когда не задан секрет проверки подписи
	ErrSecretMissing = errors.New("JWT secret missing")
	// ErrInvalidToken возвращается при любой ошибке проверки токена
	ErrInvalidToken = errors.New("invalid token payload")
)

// Session проверенный токен и его claims
type Session struct {
	Token  string
	Claims *models.UserClaims
}

// UserID возвращает идентификатор пользователя сессии
func (s *Session) UserID() string {
	if s == nil || s.Claims == nil {
		return ""
	}
	return s.Claims.UserID
}

// FromRequest заново проверяет токен из cookie запроса.
// Проверки идут в порядке: наличие cookie, наличие секрета, подпись и claims.
func FromRequest(r *http.Request, secret string, verifier TokenVerifier) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}

	if secret == "" {
		return nil, ErrSecretMissing
	}

	claims, err := verifier.Verify(cookie.Value, secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims == nil || claims.UserID == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, models.ErrMissingUserID)
	}

	return &Session{Token: cookie.Value, Claims: claims}, nil
}
