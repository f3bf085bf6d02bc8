package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	employeeMocks "hotel/internal/domains/employee/mocks"
	employeeModel "hotel/internal/domains/employee/model"
	"hotel/shared/failure"
	"hotel/shared/password"
)

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.Hash("correct-horse")
	require.NoError(t, err)

	post := "receptionist"
	employee := employeeModel.Employee{
		ID:              "e1",
		Username:        "anna",
		HashedPassword:  hashed,
		IsActive:        true,
		PostName:        &post,
		PostPermissions: pq.StringArray{"booking:create"},
	}

	tests := []struct {
		name     string
		req      dto.LoginRequest
		stored   employeeModel.Employee
		issue    bool
		issueErr error
		wantCode int
	}{
		{
			name:   "successful login",
			req:    dto.LoginRequest{Username: "anna", Password: "correct-horse"},
			stored: employee,
			issue:  true,
		},
		{
			name:     "unknown username",
			req:      dto.LoginRequest{Username: "nobody", Password: "correct-horse"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong password",
			req:      dto.LoginRequest{Username: "anna", Password: "battery-staple"},
			stored:   employee,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "inactive employee",
			req:  dto.LoginRequest{Username: "anna", Password: "correct-horse"},
			stored: func() employeeModel.Employee {
				inactive := employee
				inactive.IsActive = false

				return inactive
			}(),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "token generation error",
			req:      dto.LoginRequest{Username: "anna", Password: "correct-horse"},
			stored:   employee,
			issue:    true,
			issueErr: errors.New("token generation failed"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := employeeMocks.NewMockEmployee(ctrl)
			mockJWT := jwtMocks.NewMockJWT(ctrl)

			svc := service.New(repo, mocks.NewOtel(), mockJWT)

			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.stored, nil)

			if tt.issue {
				var pair *jwt.TokenPair
				if tt.issueErr == nil {
					pair = &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", TokenType: "Bearer"}
				}

				mockJWT.EXPECT().
					GenerateTokenPair(jwt.Subject{
						EmployeeID:  "e1",
						Username:    "anna",
						Post:        "receptionist",
						Permissions: []string{"booking:create"},
					}).
					Return(pair, tt.issueErr)
			}

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	claims := &jwt.Claims{
		Username:         "anna",
		Type:             jwt.RefreshToken,
		RegisteredClaims: gojwt.RegisteredClaims{Subject: "e1"},
	}

	tests := []struct {
		name     string
		validErr error
		stored   employeeModel.Employee
		wantErr  bool
	}{
		{
			name:   "successful token refresh",
			stored: employeeModel.Employee{ID: "e1", Username: "anna", IsActive: true},
		},
		{
			name:     "invalid refresh token",
			validErr: jwt.ErrInvalidClaim,
			wantErr:  true,
		},
		{
			name:    "employee deactivated since login",
			stored:  employeeModel.Employee{ID: "e1", Username: "anna"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := employeeMocks.NewMockEmployee(ctrl)
			mockJWT := jwtMocks.NewMockJWT(ctrl)

			svc := service.New(repo, mocks.NewOtel(), mockJWT)

			if tt.validErr != nil {
				mockJWT.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(nil, tt.validErr)
			} else {
				mockJWT.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims, nil)
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.stored, nil)
			}

			if !tt.wantErr {
				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any()).
					Return(&jwt.TokenPair{AccessToken: "new-access-token", RefreshToken: "new-refresh-token"}, nil)
			}

			res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "new-access-token", res.AccessToken)
		})
	}
}
