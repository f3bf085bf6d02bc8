package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	clientModel "hotel/internal/domains/client/model"
	clientRepository "hotel/internal/domains/client/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errBookingNotFound = "booking not found"
	errRoomNotFound    = "room not found"
	errClientNotFound  = "client not found"
	errRoomInactive    = "room is not active"
	errRoomUnavailable = "room is unavailable for the requested dates"
	errOverCapacity    = "number of guests exceeds room capacity"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Cancel(ctx context.Context, id string) (dto.CancelBookingResponse, error)
	IsRoomAvailable(ctx context.Context, roomID string, stay daterange.Range) (bool, error)
}

type serviceImpl struct {
	repo       repository.Booking
	roomRepo   roomRepository.Room
	clientRepo clientRepository.Client
	tx         gRepo.Transaction
	otel       otel.Otel
	metrics    *metrics.Metrics
	publisher  event.Publisher
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	clientRepo clientRepository.Client,
	tx gRepo.Transaction,
	otel otel.Otel,
	metrics *metrics.Metrics,
	publisher event.Publisher,
) Booking {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		clientRepo: clientRepo,
		tx:         tx,
		otel:       otel,
		metrics:    metrics,
		publisher:  publisher,
	}
}

// Create books the room when it is active, large enough and free for the whole stay.
// The room row stays locked from the availability check until the insert commits.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stay, err := req.Range()
	if err != nil {
		s.metrics.BookingsRejected.WithLabelValues(metrics.RejectReasonInvalid).Inc()

		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	booking := req.ToModel(shared.Username(ctx), stay)

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		room, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		switch {
		case room.ID == constant.Empty:
			return failure.NotFound(errRoomNotFound) // nolint:wrapcheck
		case !room.IsActive:
			return failure.UnprocessableEntity(errRoomInactive) // nolint:wrapcheck
		case !room.Fits(req.NumberOfGuests):
			s.metrics.BookingsRejected.WithLabelValues(metrics.RejectReasonCapacity).Inc()

			return failure.UnprocessableEntity(errOverCapacity) // nolint:wrapcheck
		}

		clientExists, err := s.clientRepo.ExistTx(ctx, tx, shared.FilterByID(req.ClientID, clientModel.FieldID, clientModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check client: %w", err)
		}

		if !clientExists {
			return failure.NotFound(errClientNotFound) // nolint:wrapcheck
		}

		taken, err := s.repo.ExistTx(ctx, tx, repository.Overlapping(req.RoomID, stay))
		if err != nil {
			return fmt.Errorf("failed to check availability: %w", err)
		}

		if taken {
			s.metrics.BookingsRejected.WithLabelValues(metrics.RejectReasonUnavailable).Inc()

			return failure.Conflict(errRoomUnavailable) // nolint:wrapcheck
		}

		return s.repo.InsertTx(ctx, tx, booking)
	})
	if err != nil {
		if gRepo.IsExclusionViolation(err, model.ConstraintNoOverlap) {
			s.metrics.BookingsRejected.WithLabelValues(metrics.RejectReasonUnavailable).Inc()

			return res, failure.Conflict(errRoomUnavailable) // nolint:wrapcheck
		}

		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, fail
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.metrics.BookingsCreated.Inc()

	res.FromModel(booking)
	s.publisher.Publish(ctx, event.BookingCreated, booking.ID, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	return res, nil
}

// Cancel moves an active booking to canceled with a single conditional update.
// Canceling a canceled booking succeeds without changing anything.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.CancelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetEntity(model.EntityName, id)

	from, err := model.Lifecycle.Check(model.StatusCanceled)
	if err != nil {
		return res, failure.InvalidTransition(err.Error()) // nolint:wrapcheck
	}

	res.ID = id
	res.Status = model.StatusCanceled

	affected, err := s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        string(model.StatusCanceled),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.Username(ctx),
	}, shared.FilterByIDAndStatus(id, model.FieldID, model.FieldStatus, from))
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if affected > 0 {
		res.Canceled = true

		s.metrics.BookingsCanceled.Inc()
		s.publisher.Publish(ctx, event.BookingCanceled, id, res)

		return res, nil
	}

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID, model.FieldStatus)
	if err != nil {
		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	if err = model.Lifecycle.Resolve(current.Status, model.StatusCanceled); err != nil {
		return res, failure.InvalidTransition(err.Error()) // nolint:wrapcheck
	}

	return res, nil
}

// IsRoomAvailable reports whether no active booking of the room overlaps stay.
// Any failure is reported as unavailable together with the error.
func (s *serviceImpl) IsRoomAvailable(ctx context.Context, roomID string, stay daterange.Range) (available bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.IsRoomAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetEntity(roomModel.EntityName, roomID)
	scope.SetAttribute("stay", stay)

	if err = stay.Validate(); err != nil {
		return false, failure.BadRequest(err) //nolint:wrapcheck
	}

	exists, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to check room: %w", err)
	}

	if !exists {
		return false, failure.NotFound(errRoomNotFound) // nolint:wrapcheck
	}

	taken, err := s.repo.Exist(ctx, repository.Overlapping(roomID, stay))
	if err != nil {
		log.Error().Err(err).Str("room", roomID).Msg("availability check failed")

		return false, fmt.Errorf("failed to check availability: %w", err)
	}

	return !taken, nil
}
