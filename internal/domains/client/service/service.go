package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/client/model"
	"hotel/internal/domains/client/model/dto"
	"hotel/internal/domains/client/repository"
	roomOrderDto "hotel/internal/domains/roomorder/model/dto"
	roomOrderRepository "hotel/internal/domains/roomorder/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	errDuplicateEmail = "client with this email already exists"
	errClientNotFound = "client not found"
	errRoomNotFound   = "room not found"
)

type Client interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (dto.ClientResponse, error)
	Get(ctx context.Context, id string, withRoomOrders bool) (dto.ClientResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetClientsResponse, error)
	Update(ctx context.Context, req dto.UpdateClientRequest, id string) (dto.ClientResponse, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type serviceImpl struct {
	repo          repository.Client
	roomOrderRepo roomOrderRepository.RoomOrder
	otel          otel.Otel
}

func New(repo repository.Client, roomOrderRepo roomOrderRepository.RoomOrder, otel otel.Otel) Client {
	return &serviceImpl{
		repo:          repo,
		roomOrderRepo: roomOrderRepo,
		otel:          otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClientRequest) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	client := req.ToModel(shared.Username(ctx), hashed)

	if err = s.repo.Insert(ctx, client); err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return res, mapped
		}

		log.Error().Err(err).Msg("failed to create client")

		return res, fmt.Errorf("failed to create client: %w", err)
	}

	res.FromModel(client)

	return res, nil
}

// Get optionally loads the room orders the client takes part in.
func (s *serviceImpl) Get(ctx context.Context, id string, withRoomOrders bool) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	client, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return res, fmt.Errorf("failed to get client: %w", err)
	}

	if client.ID == constant.Empty {
		return res, failure.NotFound(errClientNotFound) // nolint:wrapcheck
	}

	res.FromModel(client)

	if withRoomOrders {
		orders, err := s.roomOrderRepo.GetByParticipant(ctx, client.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get room orders of client")

			return res, fmt.Errorf("failed to get room orders of client: %w", err)
		}

		res.RoomOrders = roomOrderDto.FromModels(orders)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetClientsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count clients")

		return res, fmt.Errorf("failed to count clients: %w", err)
	}

	clients, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get clients")

		return res, fmt.Errorf("failed to get clients: %w", err)
	}

	res.FromModels(clients, total, req.Limit)

	return res, nil
}

// Update writes only the supplied fields. A changed email is checked against
// the unique constraint and a new password is hashed.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateClientRequest, id string) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.IsEmpty() {
		hashed, err := password.HashOptional(req.Password)
		if err != nil {
			return res, fmt.Errorf("failed to hash password: %w", err)
		}

		affected, err := s.repo.Update(ctx, req.Fields(shared.Username(ctx), hashed), shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			if mapped := mapWriteError(err); mapped != nil {
				return res, mapped
			}

			log.Error().Err(err).Msg("failed to update client")

			return res, fmt.Errorf("failed to update client: %w", err)
		}

		if affected == 0 {
			return res, failure.NotFound(errClientNotFound) // nolint:wrapcheck
		}
	}

	return s.Get(ctx, id, false)
}

// Delete deactivates the client. It reports false when the client was already inactive.
func (s *serviceImpl) Delete(ctx context.Context, id string) (deleted bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Update(ctx, map[string]any{
		model.FieldIsActive:      false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.Username(ctx),
	}, shared.FilterByIDAndActive(id, model.FieldID, model.FieldIsActive))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete client")

		return false, fmt.Errorf("failed to delete client: %w", err)
	}

	if affected > 0 {
		return true, nil
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to check if client exists: %w", err)
	}

	if !exist {
		return false, failure.NotFound(errClientNotFound) // nolint:wrapcheck
	}

	return false, nil
}

func mapWriteError(err error) error {
	switch {
	case gRepo.IsUniqueViolation(err, model.ConstraintUniqueEmail):
		return failure.Conflict(errDuplicateEmail)
	case gRepo.IsForeignKeyViolation(err):
		return failure.NotFound(errRoomNotFound)
	default:
		return nil
	}
}
