package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/InQaaaaGit/trunc_web/internal/auth"
	"go.uber.org/zap"
)

const (
	// LandingPath публичная страница входа
	LandingPath = "/"
	// DashboardPath защищенный раздел, доступный только с валидной сессией
	DashboardPath = "/dashboard"

	// HeaderUserID и HeaderUsername передают личность пользователя дальше по цепочке
	HeaderUserID   = "X-User-Id"
	HeaderUsername = "X-User-Username"
)

// isProtectedPath сообщает, относится ли путь к /dashboard или его подпутям
func isProtectedPath(path string) bool {
	return path == DashboardPath || strings.HasPrefix(path, DashboardPath+"/")
}

// SessionGate middleware для проверки сессии перед страницами.
// Без валидной сессии защищенные пути перенаправляются на главную,
// а с валидной сессией главная перенаправляет на дашборд.
// Остальные пути проходят без проверки.
func SessionGate(secret string, verifier auth.TokenVerifier, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Заголовки личности выставляет только этот middleware
			r.Header.Del(HeaderUserID)
			r.Header.Del(HeaderUsername)

			path := r.URL.Path
			protected := isProtectedPath(path)
			if !protected && path != LandingPath {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := auth.FromRequest(r, secret, verifier)
			if err != nil {
				logGateFailure(logger, r, err)
				if protected {
					http.Redirect(w, r, LandingPath, http.StatusTemporaryRedirect)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if path == LandingPath {
				http.Redirect(w, r, DashboardPath, http.StatusTemporaryRedirect)
				return
			}

			r.Header.Set(HeaderUserID, sess.Claims.UserID)
			r.Header.Set(HeaderUsername, sess.Claims.Username)
			ctx := auth.WithClaims(r.Context(), sess.Claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func logGateFailure(logger *zap.Logger, r *http.Request, err error) {
	fields := []zap.Field{
		zap.String("path", r.URL.Path),
		zap.String("request_id", GetRequestID(r.Context())),
	}
	switch {
	case errors.Is(err, auth.ErrNoSession):
		logger.Debug("No session cookie", fields...)
	case errors.Is(err, auth.ErrSecretMissing):
		logger.Error("JWT secret is not configured", fields...)
	default:
		logger.Warn("Session verification failed", append(fields, zap.Error(err))...)
	}
}
