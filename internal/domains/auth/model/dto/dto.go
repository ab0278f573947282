package dto

import (
	"hus/infras/jwt"
	userDto "hus/internal/domains/user/model/dto"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=100"`
}

type LoginResponse struct {
	Session jwt.Session          `json:"session"`
	User    userDto.UserResponse `json:"user"`
}
