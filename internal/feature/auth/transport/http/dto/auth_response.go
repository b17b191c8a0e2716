package dto

import (
	"shop_backend/internal/feature/auth/usecase"
)

// UserRes is the reduced user projection returned to clients.
// It deliberately omits the password hash and the synthesized profile fields.
type UserRes struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// AuthRes is the response body shared by register, login and refresh.
type AuthRes struct {
	User         UserRes `json:"user"`
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
}

// ErrorRes is the structured error body returned on every failure.
type ErrorRes struct {
	Error string `json:"error"`
}

// NewAuthRes projects an AuthResult down to the client-facing shape.
func NewAuthRes(res *usecase.AuthResult) AuthRes {
	return AuthRes{
		User: UserRes{
			ID:    res.User.ID,
			Email: res.User.Email,
		},
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
	}
}
