package serviceorder

import (
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/serviceorder/model"
	"hotel/internal/domains/serviceorder/model/dto"
	"hotel/internal/domains/serviceorder/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ServiceOrder
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.ServiceOrder, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/service-orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateServiceOrder)
		routerGroup.Get("/", handler.GetServiceOrders)
		routerGroup.Get("/{id}", handler.GetServiceOrderByID)
		routerGroup.Patch("/{id}/status", handler.TransitionServiceOrder)
	})
}

// CreateServiceOrder orders an active service to a room.
// @Summary Create a service order
// @Tags ServiceOrder
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceOrderRequest true "Create Service Order Request"
// @Success 201 {object} response.Data[dto.ServiceOrderResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/service-orders [post]
// @Security BearerAuth
func (handler *Handler) CreateServiceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateServiceOrder")
	defer scope.End()

	var req dto.CreateServiceOrderRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	order, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service order created successfully")

	response.WithJSON(w, http.StatusCreated, order)
}

// GetServiceOrders lists service orders.
// @Summary Get all service orders
// @Tags ServiceOrder
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room"
// @Param service_id query string false "Filter by service"
// @Param client_id query string false "Filter by client"
// @Param status query string false "Comma separated statuses, e.g. accepted,in_process"
// @Success 200 {object} response.Data[dto.GetServiceOrdersResponse]
// @Failure 400 {object} response.Error
// @Failure 416 {object} response.Error
// @Router /v1/service-orders [get]
// @Security BearerAuth
func (handler *Handler) GetServiceOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := queryParams.Validate(handler.cfg.App.Pagination.MaxLimit); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, param := range []string{constant.RequestParamRoomID, constant.RequestParamServiceID, constant.RequestParamClientID} {
		value := query.Get(param)
		if value == constant.Empty {
			continue
		}

		if err := validator.ValidateVar(value, "uuid"); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    param,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	if statuses := shared.ConvertStringToSlice(query.Get(constant.RequestParamStatus)); len(statuses) > 0 {
		if err := validator.ValidateVar(statuses, "dive,oneof=accepted in_process fulfilled canceled"); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorIn,
			Value:    statuses,
			Table:    model.TableName,
		})
	}

	orders, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, orders)
}

// GetServiceOrderByID retrieves a service order.
// @Summary Get a service order by ID
// @Tags ServiceOrder
// @Produce json
// @Param id path string true "Service Order ID"
// @Success 200 {object} response.Data[dto.ServiceOrderResponse]
// @Failure 404 {object} response.Error
// @Router /v1/service-orders/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetServiceOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceOrderByID")
	defer scope.End()

	order, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, order)
}

// TransitionServiceOrder moves a service order along accepted, in_process, fulfilled or canceled.
// @Summary Change the status of a service order
// @Tags ServiceOrder
// @Accept json
// @Produce json
// @Param id path string true "Service Order ID"
// @Param request body dto.TransitionRequest true "Target status"
// @Success 200 {object} response.Data[dto.TransitionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/service-orders/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) TransitionServiceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionServiceOrder")
	defer scope.End()

	var req dto.TransitionRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Transition(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("status", string(req.Status)).Msg("failed to change service order status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
