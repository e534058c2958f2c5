package domain

import "context"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type LoginUsecase interface {
	GetUserByEmail(ctx context.Context, email string) (User, error)
	CreateAccessToken(user *User, secret string, expiry int) (string, error)
}
