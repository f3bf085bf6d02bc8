package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"hotel/infras/otel"
	clientModel "hotel/internal/domains/client/model"
	clientRepository "hotel/internal/domains/client/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/internal/domains/roomorder/model"
	"hotel/internal/domains/roomorder/model/dto"
	"hotel/internal/domains/roomorder/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errRoomOrderNotFound     = "room order not found"
	errRoomNotFound          = "room not found"
	errPayingClientNotFound  = "paying client not found"
	errParticipantNotFound   = "participant not found"
	errPayerAsParticipant    = "paying client cannot be a participant"
	errParticipantDuplicated = "client already participates in the room order"
)

type RoomOrder interface {
	Create(ctx context.Context, req dto.CreateRoomOrderRequest) (dto.RoomOrderResponse, error)
	Get(ctx context.Context, id string) (dto.RoomOrderResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomOrdersResponse, error)
	AddParticipant(ctx context.Context, req dto.AddParticipantRequest, id string) (dto.RoomOrderResponse, error)
}

type serviceImpl struct {
	repo       repository.RoomOrder
	roomRepo   roomRepository.Room
	clientRepo clientRepository.Client
	tx         gRepo.Transaction
	otel       otel.Otel
}

func New(
	repo repository.RoomOrder,
	roomRepo roomRepository.Room,
	clientRepo clientRepository.Client,
	tx gRepo.Transaction,
	otel otel.Otel,
) RoomOrder {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		clientRepo: clientRepo,
		tx:         tx,
		otel:       otel,
	}
}

// Create stores the order together with its participants.
// Room orders are records of stays and do not reserve the room.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomOrderRequest) (res dto.RoomOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_order.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stay, err := req.Range()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	if slices.Contains(req.ParticipantIDs, req.PayingClientID) {
		return res, failure.UnprocessableEntity(errPayerAsParticipant) // nolint:wrapcheck
	}

	order := req.ToModel(shared.Username(ctx), stay)

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		roomExists, err := s.roomRepo.ExistTx(ctx, tx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check room: %w", err)
		}

		if !roomExists {
			return failure.NotFound(errRoomNotFound) // nolint:wrapcheck
		}

		payerExists, err := s.clientRepo.ExistTx(ctx, tx, shared.FilterByID(req.PayingClientID, clientModel.FieldID, clientModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check paying client: %w", err)
		}

		if !payerExists {
			return failure.NotFound(errPayingClientNotFound) // nolint:wrapcheck
		}

		if len(req.ParticipantIDs) > 0 {
			found, err := s.clientRepo.CountTx(ctx, tx, clientRepository.ByIDs(req.ParticipantIDs))
			if err != nil {
				return fmt.Errorf("failed to check participants: %w", err)
			}

			if found != len(req.ParticipantIDs) {
				return failure.NotFound(errParticipantNotFound) // nolint:wrapcheck
			}
		}

		if err := s.repo.InsertTx(ctx, tx, order); err != nil {
			return err
		}

		if len(req.ParticipantIDs) == 0 {
			return nil
		}

		return s.repo.InsertParticipantsTx(ctx, tx, req.Participants(order.ID))
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, fail
		}

		log.Error().Err(err).Msg("failed to create room order")

		return res, fmt.Errorf("failed to create room order: %w", err)
	}

	res.FromModel(order)
	res.ParticipantIDs = req.ParticipantIDs

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_order.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room order")

		return res, fmt.Errorf("failed to get room order: %w", err)
	}

	if order.ID == constant.Empty {
		return res, failure.NotFound(errRoomOrderNotFound) // nolint:wrapcheck
	}

	participants, err := s.repo.GetParticipantIDs(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room order participants")

		return res, fmt.Errorf("failed to get participants: %w", err)
	}

	res.FromModel(order)
	res.ParticipantIDs = participants

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_order.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room orders")

		return res, fmt.Errorf("failed to count room orders: %w", err)
	}

	orders, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room orders")

		return res, fmt.Errorf("failed to get room orders: %w", err)
	}

	res.FromModels(orders, total, req.Limit)

	return res, nil
}

// AddParticipant links another client to the order. The order row is locked so the
// paying client cannot change underneath the check.
func (s *serviceImpl) AddParticipant(ctx context.Context, req dto.AddParticipantRequest, id string) (res dto.RoomOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_order.AddParticipant")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetEntity(model.EntityName, id)

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		order, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock room order: %w", err)
		}

		if order.ID == constant.Empty {
			return failure.NotFound(errRoomOrderNotFound) // nolint:wrapcheck
		}

		if order.PayingClientID == req.ClientID {
			return failure.UnprocessableEntity(errPayerAsParticipant) // nolint:wrapcheck
		}

		exists, err := s.clientRepo.ExistTx(ctx, tx, shared.FilterByID(req.ClientID, clientModel.FieldID, clientModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check client: %w", err)
		}

		if !exists {
			return failure.NotFound(errParticipantNotFound) // nolint:wrapcheck
		}

		return s.repo.InsertParticipantsTx(ctx, tx, []model.Participant{{RoomOrderID: id, ClientID: req.ClientID}})
	})
	if err != nil {
		if gRepo.IsUniqueViolation(err, model.ConstraintParticipantPrimaryKey) {
			return res, failure.Conflict(errParticipantDuplicated) // nolint:wrapcheck
		}

		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, fail
		}

		log.Error().Err(err).Msg("failed to add room order participant")

		return res, fmt.Errorf("failed to add participant: %w", err)
	}

	return s.Get(ctx, id)
}
