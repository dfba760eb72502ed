package dto

import "jobtrack/internal/domain/user"

type UserResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	LastName string `json:"lastName"`
	Location string `json:"location"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func NewAuthResponse(u user.User, token string) AuthResponse {
	return AuthResponse{
		User: UserResponse{
			Name:     u.Name,
			Email:    u.Email,
			LastName: u.LastName,
			Location: u.Location,
		},
		Token: token,
	}
}
