package dto

import (
	"hotel/infras/jwt"
	employeeModel "hotel/internal/domains/employee/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.TokenType = tokenPair.TokenType
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

// Subject builds the token subject from an employee row joined with its post.
// An employee without a post gets a token that grants nothing.
func Subject(employee employeeModel.Employee) jwt.Subject {
	subject := jwt.Subject{
		EmployeeID:  employee.ID,
		Username:    employee.Username,
		Permissions: []string{},
	}

	if employee.PostName != nil {
		subject.Post = *employee.PostName
	}

	if employee.PostPermissions != nil {
		subject.Permissions = []string(employee.PostPermissions)
	}

	return subject
}
