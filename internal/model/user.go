package model

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserResponse is the outward shape of a user. The password hash never
// leaves the service boundary.
type UserResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
