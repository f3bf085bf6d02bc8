package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	employeeModel "hotel/internal/domains/employee/model"
	employeeRepo "hotel/internal/domains/employee/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/password"

	"github.com/rs/zerolog/log"
)

const (
	errInvalidCredentials = "invalid username or password"
	errInactiveEmployee   = "employee account is deactivated"
	errInvalidRefresh     = "invalid refresh token"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	employeeRepo employeeRepo.Employee
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(employeeRepo employeeRepo.Employee, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		employeeRepo: employeeRepo,
		otel:         otel,
		jwtService:   jwt,
	}
}

// Login issues a token pair carrying the permissions of the employee's post.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	employee, err := s.employeeRepo.Get(ctx, employeeRepo.ByUsername(req.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.Unauthorized(errInvalidCredentials) // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, employee.HashedPassword); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(errInvalidCredentials) // nolint:wrapcheck
	}

	if !employee.IsActive {
		return res, failure.Forbidden(errInactiveEmployee) // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(dto.Subject(employee))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// RefreshToken rotates the pair. Permissions are read again so a post change
// takes effect on the next refresh.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.Unauthorized(errInvalidRefresh) // nolint:wrapcheck
	}

	employee, err := s.employeeRepo.Get(ctx, shared.FilterByID(claims.EmployeeID(), employeeModel.FieldID, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty || !employee.IsActive {
		return res, failure.Unauthorized(errInvalidRefresh) // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(dto.Subject(employee))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
