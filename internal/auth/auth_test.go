package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/InQaaaaGit/trunc_web/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func noneToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, validClaims()).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"userID":   "user-42",
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
}

func TestHMACVerifierVerify(t *testing.T) {
	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	wrongKey := validClaims()
	wrongKey["userId"] = wrongKey["userID"]
	delete(wrongKey, "userID")

	emptyID := validClaims()
	emptyID["userID"] = ""

	numericID := validClaims()
	numericID["userID"] = 7

	floatID := validClaims()
	floatID["userID"] = 7.5

	zeroID := validClaims()
	zeroID["userID"] = 0

	boolID := validClaims()
	boolID["userID"] = true

	tests := []struct {
		name     string
		token    string
		secret   string
		wantUser string
		wantErr  bool
	}{
		{
			name:     "Valid HS256 token",
			token:    signToken(t, jwt.SigningMethodHS256, testSecret, validClaims()),
			secret:   testSecret,
			wantUser: "user-42",
		},
		{
			name:     "Valid HS512 token",
			token:    signToken(t, jwt.SigningMethodHS512, testSecret, validClaims()),
			secret:   testSecret,
			wantUser: "user-42",
		},
		{
			name:    "Wrong secret",
			token:   signToken(t, jwt.SigningMethodHS256, "other", validClaims()),
			secret:  testSecret,
			wantErr: true,
		},
		{
			name:    "Expired token",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, expired),
			secret:  testSecret,
			wantErr: true,
		},
		{
			name:    "Lowercase userId claim is rejected",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, wrongKey),
			secret:  testSecret,
			wantErr: true,
		},
		{
			name:    "Empty userID",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, emptyID),
			secret:  testSecret,
			wantErr: true,
		},
		{
			name:     "Numeric userID",
			token:    signToken(t, jwt.SigningMethodHS256, testSecret, numericID),
			secret:   testSecret,
			wantUser: "7",
		},
		{
			name:     "Float userID",
			token:    signToken(t, jwt.SigningMethodHS256, testSecret, floatID),
			secret:   testSecret,
			wantUser: "7.5",
		},
		{
			name:    "Zero userID",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, zeroID),
			secret:  testSecret,
			wantErr: true,
		},
		{
			name:    "Boolean userID",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, boolID),
			secret:  testSecret,
			wantErr: true,
		},
		{
			name:    "Unsigned token",
			token:   noneToken(t),
			secret:  testSecret,
			wantErr: true,
		},
		{
			name:    "Garbage",
			token:   "not.a.jwt",
			secret:  testSecret,
			wantErr: true,
		},
	}

	v := NewHMACVerifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := v.Verify(tt.token, tt.secret)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, claims.UserID)
			assert.Equal(t, "alice", claims.Username)
		})
	}
}

// stubVerifier позволяет проверить порядок проверок без настоящих токенов
type stubVerifier struct {
	claims *models.UserClaims
	err    error
	calls  int
}

func (s *stubVerifier) Verify(token, secret string) (*models.UserClaims, error) {
	s.calls++
	return s.claims, s.err
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		cookie    *http.Cookie
		secret    string
		verifier  *stubVerifier
		wantErr   error
		wantCalls int
	}{
		{
			name:     "No cookie",
			secret:   testSecret,
			verifier: &stubVerifier{},
			wantErr:  ErrNoSession,
		},
		{
			name:     "Empty cookie",
			cookie:   &http.Cookie{Name: CookieName, Value: ""},
			secret:   testSecret,
			verifier: &stubVerifier{},
			wantErr:  ErrNoSession,
		},
		{
			name:     "Secret missing is checked before verification",
			cookie:   &http.Cookie{Name: CookieName, Value: "tok"},
			secret:   "",
			verifier: &stubVerifier{claims: &models.UserClaims{UserID: "u"}},
			wantErr:  ErrSecretMissing,
		},
		{
			name:      "Verifier error",
			cookie:    &http.Cookie{Name: CookieName, Value: "tok"},
			secret:    testSecret,
			verifier:  &stubVerifier{err: errors.New("signature is invalid")},
			wantErr:   ErrInvalidToken,
			wantCalls: 1,
		},
		{
			name:      "Verifier returns claims without userID",
			cookie:    &http.Cookie{Name: CookieName, Value: "tok"},
			secret:    testSecret,
			verifier:  &stubVerifier{claims: &models.UserClaims{Username: "bob"}},
			wantErr:   ErrInvalidToken,
			wantCalls: 1,
		},
		{
			name:      "Valid session",
			cookie:    &http.Cookie{Name: CookieName, Value: "tok"},
			secret:    testSecret,
			verifier:  &stubVerifier{claims: &models.UserClaims{UserID: "u1", Username: "bob"}},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			sess, err := FromRequest(req, tt.secret, tt.verifier)
			assert.Equal(t, tt.wantCalls, tt.verifier.calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sess)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "tok", sess.Token)
			assert.Equal(t, "u1", sess.UserID())
		})
	}
}

func TestFromRequestWithRealToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/get-urls", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: signToken(t, jwt.SigningMethodHS256, testSecret, validClaims())})

	sess, err := FromRequest(req, testSecret, NewHMACVerifier())
	require.NoError(t, err)
	assert.Equal(t, "user-42", sess.UserID())
	assert.Equal(t, "alice", sess.Claims.Username)
}

func TestClaimsContext(t *testing.T) {
	_, ok := ClaimsFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithClaims(context.Background(), &models.UserClaims{UserID: "u1"})
	claims, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "u1", claims.UserID)

	var nilSession *Session
	assert.Empty(t, nilSession.UserID())
}
