package dto_test

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"hotel/infras/jwt"
	"hotel/internal/domains/auth/model/dto"
	employeeModel "hotel/internal/domains/employee/model"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestSubject(t *testing.T) {
	post := "receptionist"

	tests := []struct {
		name     string
		employee employeeModel.Employee
		want     jwt.Subject
	}{
		{
			name: "with post",
			employee: employeeModel.Employee{
				ID:              "e1",
				Username:        "anna",
				PostName:        &post,
				PostPermissions: pq.StringArray{"booking:create", "booking:read"},
			},
			want: jwt.Subject{
				EmployeeID:  "e1",
				Username:    "anna",
				Post:        "receptionist",
				Permissions: []string{"booking:create", "booking:read"},
			},
		},
		{
			name:     "without post",
			employee: employeeModel.Employee{ID: "e2", Username: "boris"},
			want:     jwt.Subject{EmployeeID: "e2", Username: "boris", Permissions: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.Subject(tt.employee))
		})
	}
}
