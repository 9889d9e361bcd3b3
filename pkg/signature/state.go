package signature

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Errores de state OAuth.
var (
	ErrInvalidState = errors.New("signature: state inválido")
	ErrExpiredState = errors.New("signature: state expirado")
)

// State datos que viajan en el parámetro state de un flujo OAuth.
type State struct {
	UserID   string `json:"uid"`
	Provider string `json:"provider"`
	Nonce    string `json:"nonce"`
	IssuedAt int64  `json:"iat"` // unix segundos
}

// EncodeState serializa el state como base64url(json) + "." + hmac-hex(base64url(json)).
func EncodeState(s State, secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("signature: secret vacío")
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("signature: serializar state: %w", err)
	}
	body := base64.RawURLEncoding.EncodeToString(raw)
	return body + "." + Sign([]byte(body), secret), nil
}

// DecodeState valida firma y antigüedad. maxAge <= 0 desactiva el control de expiración.
func DecodeState(token, secret string, maxAge time.Duration, now time.Time) (State, error) {
	if secret == "" {
		return State{}, ErrInvalidState
	}
	body, sig, ok := strings.Cut(token, ".")
	if !ok || body == "" || !Verify([]byte(body), sig, secret) {
		return State{}, ErrInvalidState
	}
	raw, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return State{}, ErrInvalidState
	}
	var s State
	if err := json.Unmarshal(raw, &s); err != nil || s.UserID == "" {
		return State{}, ErrInvalidState
	}
	if maxAge > 0 {
		issued := time.Unix(s.IssuedAt, 0)
		if now.Sub(issued) > maxAge || issued.After(now.Add(time.Minute)) {
			return State{}, ErrExpiredState
		}
	}
	return s, nil
}
