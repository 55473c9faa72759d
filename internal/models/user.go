package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingUserID возвращается, когда в токене нет идентификатора пользователя
var ErrMissingUserID = errors.New("token has no userID claim")

// UserClaims представляет собой данные, хранящиеся в JWT токене сессии.
// Ключ userID единый для токена, заголовков и контекста запроса.
type UserClaims struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UnmarshalJSON принимает userID строкой или числом.
// Числовой 0 считается отсутствующим идентификатором.
func (c *UserClaims) UnmarshalJSON(data []byte) error {
	var aux struct {
		UserID   json.RawMessage `json:"userID"`
		Username string          `json:"username"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var registered jwt.RegisteredClaims
	if err := json.Unmarshal(data, &registered); err != nil {
		return err
	}

	var userID string
	if len(aux.UserID) > 0 {
		id, isNumber, err := decodeID(aux.UserID)
		if err != nil {
			return fmt.Errorf("userID: %w", err)
		}
		if !(isNumber && id == "0") {
			userID = id
		}
	}

	c.UserID = userID
	c.Username = aux.Username
	c.RegisteredClaims = registered
	return nil
}

// Validate вызывается парсером jwt после проверки подписи и сроков действия
func (c UserClaims) Validate() error {
	if c.UserID == "" {
		return ErrMissingUserID
	}
	return nil
}

// Credentials данные формы входа и регистрации
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
