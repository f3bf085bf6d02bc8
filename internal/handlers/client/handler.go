package client

import (
	"hotel/config"
	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	"hotel/internal/domains/client/model"
	"hotel/internal/domains/client/model/dto"
	"hotel/internal/domains/client/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Client
	bookingService bookingService.Booking
	cfg            *config.Config
	otel           otel.Otel
}

func New(service service.Client, bookingService bookingService.Booking, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		bookingService: bookingService,
		cfg:            cfg,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clients", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClient)
		routerGroup.Get("/", handler.GetClients)
		routerGroup.Get("/{id}", handler.GetClientByID)
		routerGroup.Patch("/{id}", handler.UpdateClient)
		routerGroup.Delete("/{id}", handler.DeleteClient)
		routerGroup.Get("/{id}/bookings", handler.GetClientBookings)
	})
}

// CreateClient registers a hotel guest.
// @Summary Create a client
// @Tags Client
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Create Client Request"
// @Success 201 {object} response.Data[dto.ClientResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/clients [post]
// @Security BearerAuth
func (handler *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClient")
	defer scope.End()

	var req dto.CreateClientRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	client, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create client")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Client created successfully")

	response.WithJSON(w, http.StatusCreated, client)
}

// GetClients lists clients.
// @Summary Get all clients
// @Tags Client
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param is_active query bool false "Filter by active flag"
// @Param email query string false "Filter by email"
// @Success 200 {object} response.Data[dto.GetClientsResponse]
// @Failure 416 {object} response.Error
// @Router /v1/clients [get]
// @Security BearerAuth
func (handler *Handler) GetClients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClients")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := queryParams.Validate(handler.cfg.App.Pagination.MaxLimit); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if isActive := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamIsActive)); isActive != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *isActive,
			Table:    model.TableName,
		})
	}

	if email := r.URL.Query().Get(model.FieldEmail); email != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	clients, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get clients")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, clients)
}

// GetClientByID retrieves a client, optionally with the room orders they take part in.
// @Summary Get a client by ID
// @Tags Client
// @Produce json
// @Param id path string true "Client ID"
// @Param with_room_orders query bool false "Include room orders"
// @Success 200 {object} response.Data[dto.ClientResponse]
// @Failure 404 {object} response.Error
// @Router /v1/clients/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientByID")
	defer scope.End()

	withRoomOrders := false
	if flag := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamWithRoomOrders)); flag != nil {
		withRoomOrders = *flag
	}

	client, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID), withRoomOrders)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, client)
}

// UpdateClient applies a partial patch. A new password is hashed before storing.
// @Summary Update a client
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body dto.UpdateClientRequest true "Update Client Request"
// @Success 200 {object} response.Data[dto.ClientResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/clients/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateClient")
	defer scope.End()

	var req dto.UpdateClientRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	client, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update client")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, client)
}

// DeleteClient deactivates a client.
// @Summary Delete a client
// @Tags Client
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/clients/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClient")
	defer scope.End()

	deleted, err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete client")

		response.WithError(w, err)

		return
	}

	if !deleted {
		response.WithMessage(w, http.StatusOK, "Client is already inactive")

		return
	}

	response.WithMessage(w, http.StatusOK, "Client deleted successfully")
}

// GetClientBookings lists the bookings of a client, active ones unless status says otherwise.
// @Summary Get bookings of a client
// @Tags Client
// @Produce json
// @Param id path string true "Client ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "active or canceled" default(active)
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/clients/{id}/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetClientBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := queryParams.Validate(handler.cfg.App.Pagination.MaxLimit); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	status, err := bookingModel.ParseStatus(r.URL.Query().Get(constant.RequestParamStatus))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if _, err = handler.service.Get(ctx, id, false); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	var bookings bookingDto.GetBookingsResponse

	bookings, err = handler.bookingService.GetAll(ctx, queryParams, bookingRepository.Listing(status, constant.Empty, id))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get client bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}
