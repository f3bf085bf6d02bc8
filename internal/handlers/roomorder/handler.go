package roomorder

import (
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/roomorder/model/dto"
	"hotel/internal/domains/roomorder/repository"
	"hotel/internal/domains/roomorder/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomOrder
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.RoomOrder, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomOrder)
		routerGroup.Get("/", handler.GetRoomOrders)
		routerGroup.Get("/{id}", handler.GetRoomOrderByID)
		routerGroup.Post("/{id}/clients", handler.AddParticipant)
	})
}

// CreateRoomOrder records a stay paid by one client with optional co-guests.
// @Summary Create a room order
// @Tags RoomOrder
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomOrderRequest true "Create Room Order Request"
// @Success 201 {object} response.Data[dto.RoomOrderResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/room-orders [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomOrder")
	defer scope.End()

	var req dto.CreateRoomOrderRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	order, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room order created successfully")

	response.WithJSON(w, http.StatusCreated, order)
}

// GetRoomOrders lists room orders.
// @Summary Get all room orders
// @Tags RoomOrder
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetRoomOrdersResponse]
// @Failure 400 {object} response.Error
// @Failure 416 {object} response.Error
// @Router /v1/room-orders [get]
// @Security BearerAuth
func (handler *Handler) GetRoomOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := queryParams.Validate(handler.cfg.App.Pagination.MaxLimit); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	roomID := r.URL.Query().Get(constant.RequestParamRoomID)
	if roomID != constant.Empty {
		if err := validator.ValidateVar(roomID, "uuid"); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	orders, err := handler.service.GetAll(ctx, queryParams, repository.ByRoom(roomID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, orders)
}

// GetRoomOrderByID retrieves a room order with its participants.
// @Summary Get a room order by ID
// @Tags RoomOrder
// @Produce json
// @Param id path string true "Room Order ID"
// @Success 200 {object} response.Data[dto.RoomOrderResponse]
// @Failure 404 {object} response.Error
// @Router /v1/room-orders/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomOrderByID")
	defer scope.End()

	order, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, order)
}

// AddParticipant adds a co-guest to a room order.
// @Summary Add a participant to a room order
// @Tags RoomOrder
// @Accept json
// @Produce json
// @Param id path string true "Room Order ID"
// @Param request body dto.AddParticipantRequest true "Participant"
// @Success 200 {object} response.Data[dto.RoomOrderResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/room-orders/{id}/clients [post]
// @Security BearerAuth
func (handler *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddParticipant")
	defer scope.End()

	var req dto.AddParticipantRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	order, err := handler.service.AddParticipant(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, order)
}
