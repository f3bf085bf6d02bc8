package hotelservice

import (
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/hotelservice/model"
	"hotel/internal/domains/hotelservice/model/dto"
	"hotel/internal/domains/hotelservice/service"
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
	service service.Service
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Service, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateService)
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Get("/{id}", handler.GetServiceByID)
		routerGroup.Patch("/{id}", handler.UpdateService)
		routerGroup.Delete("/{id}", handler.DeleteService)
	})
}

// CreateService adds an orderable extra to the catalogue.
// @Summary Create a service
// @Tags Service
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} response.Data[dto.ServiceResponse]
// @Failure 400 {object} response.Error
// @Router /v1/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	var req dto.CreateServiceRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	svc, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service created successfully")

	response.WithJSON(w, http.StatusCreated, svc)
}

// GetServices lists services.
// @Summary Get all services
// @Tags Service
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param is_active query bool false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetServicesResponse]
// @Failure 416 {object} response.Error
// @Router /v1/services [get]
// @Security BearerAuth
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
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

	services, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, services)
}

// GetServiceByID retrieves a service.
// @Summary Get a service by ID
// @Tags Service
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceResponse]
// @Failure 404 {object} response.Error
// @Router /v1/services/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	svc, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, svc)
}

// UpdateService applies a partial patch.
// @Summary Update a service
// @Tags Service
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Update Service Request"
// @Success 200 {object} response.Data[dto.ServiceResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	var req dto.UpdateServiceRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	svc, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, svc)
}

// DeleteService deactivates a service. Existing orders keep referencing it.
// @Summary Delete a service
// @Tags Service
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	deleted, err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service")

		response.WithError(w, err)

		return
	}

	if !deleted {
		response.WithMessage(w, http.StatusOK, "Service is already inactive")

		return
	}

	response.WithMessage(w, http.StatusOK, "Service deleted successfully")
}
