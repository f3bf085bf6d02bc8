package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	clientModel "hotel/internal/domains/client/model"
	clientRepository "hotel/internal/domains/client/repository"
	serviceModel "hotel/internal/domains/hotelservice/model"
	serviceRepository "hotel/internal/domains/hotelservice/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/internal/domains/serviceorder/model"
	"hotel/internal/domains/serviceorder/model/dto"
	"hotel/internal/domains/serviceorder/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"
	"hotel/shared/transition"

	"github.com/rs/zerolog/log"
)

const (
	errServiceOrderNotFound = "service order not found"
	errServiceNotFound      = "service not found"
	errServiceInactive      = "service is not active"
	errClientNotFound       = "client not found"
	errRoomNotFound         = "room not found"
)

type ServiceOrder interface {
	Create(ctx context.Context, req dto.CreateServiceOrderRequest) (dto.ServiceOrderResponse, error)
	Get(ctx context.Context, id string) (dto.ServiceOrderResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetServiceOrdersResponse, error)
	Transition(ctx context.Context, req dto.TransitionRequest, id string) (dto.TransitionResponse, error)
}

type serviceImpl struct {
	repo        repository.ServiceOrder
	serviceRepo serviceRepository.Service
	roomRepo    roomRepository.Room
	clientRepo  clientRepository.Client
	otel        otel.Otel
	metrics     *metrics.Metrics
	publisher   event.Publisher
}

func New(
	repo repository.ServiceOrder,
	serviceRepo serviceRepository.Service,
	roomRepo roomRepository.Room,
	clientRepo clientRepository.Client,
	otel otel.Otel,
	metrics *metrics.Metrics,
	publisher event.Publisher,
) ServiceOrder {
	return &serviceImpl{
		repo:        repo,
		serviceRepo: serviceRepo,
		roomRepo:    roomRepo,
		clientRepo:  clientRepo,
		otel:        otel,
		metrics:     metrics,
		publisher:   publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceOrderRequest) (res dto.ServiceOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_order.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	svc, err := s.serviceRepo.Get(ctx, shared.FilterByID(req.ServiceID, serviceModel.FieldID, serviceModel.TableName),
		serviceModel.FieldID, serviceModel.FieldIsActive)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == constant.Empty {
		return res, failure.NotFound(errServiceNotFound) // nolint:wrapcheck
	}

	if !svc.IsActive {
		return res, failure.UnprocessableEntity(errServiceInactive) // nolint:wrapcheck
	}

	clientExists, err := s.clientRepo.Exist(ctx, shared.FilterByID(req.ClientID, clientModel.FieldID, clientModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to check client: %w", err)
	}

	if !clientExists {
		return res, failure.NotFound(errClientNotFound) // nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to check room: %w", err)
	}

	if !roomExists {
		return res, failure.NotFound(errRoomNotFound) // nolint:wrapcheck
	}

	order := req.ToModel(shared.Username(ctx))

	if err = s.repo.Insert(ctx, order); err != nil {
		if gRepo.IsForeignKeyViolation(err) {
			return res, failure.NotFound("referenced service, client or room not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create service order")

		return res, fmt.Errorf("failed to create service order: %w", err)
	}

	res.FromModel(order)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_order.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service order")

		return res, fmt.Errorf("failed to get service order: %w", err)
	}

	if order.ID == constant.Empty {
		return res, failure.NotFound(errServiceOrderNotFound) // nolint:wrapcheck
	}

	res.FromModel(order)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetServiceOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_order.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service orders")

		return res, fmt.Errorf("failed to count service orders: %w", err)
	}

	orders, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service orders")

		return res, fmt.Errorf("failed to get service orders: %w", err)
	}

	res.FromModels(orders, total, req.Limit)

	return res, nil
}

// Transition moves the order to req.Status when its current status is a predecessor of it.
// Requesting the status the order already holds is reported with Changed false.
func (s *serviceImpl) Transition(ctx context.Context, req dto.TransitionRequest, id string) (res dto.TransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_order.Transition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetEntity(model.EntityName, id)

	res.ID = id
	res.Status = req.Status

	from, checkErr := model.Lifecycle.Check(req.Status)
	if checkErr != nil && !errors.Is(checkErr, transition.ErrInvalidTransition) {
		return res, failure.BadRequest(checkErr) //nolint:wrapcheck
	}

	if checkErr == nil {
		affected, err := s.repo.Update(ctx, map[string]any{
			model.FieldStatus:        string(req.Status),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: shared.Username(ctx),
		}, shared.FilterByIDAndStatus(id, model.FieldID, model.FieldStatus, from))
		if err != nil {
			log.Error().Err(err).Msg("failed to update service order status")

			return res, fmt.Errorf("failed to update service order status: %w", err)
		}

		if affected > 0 {
			res.Changed = true

			s.metrics.ServiceOrderTransitions.WithLabelValues(string(req.Status)).Inc()
			s.publisher.Publish(ctx, event.ServiceOrderStatusChanged, id, res)

			return res, nil
		}
	}

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID, model.FieldStatus)
	if err != nil {
		return res, fmt.Errorf("failed to get service order: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound(errServiceOrderNotFound) // nolint:wrapcheck
	}

	if err = model.Lifecycle.Resolve(current.Status, req.Status); err != nil {
		return res, failure.InvalidTransition(err.Error()) // nolint:wrapcheck
	}

	return res, nil
}
