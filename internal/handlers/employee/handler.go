package employee

import (
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/employee/model"
	"hotel/internal/domains/employee/model/dto"
	"hotel/internal/domains/employee/service"
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
	service service.Employee
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Employee, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Get("/", handler.GetEmployees)
		routerGroup.Get("/{id}", handler.GetEmployeeByID)
		routerGroup.Patch("/{id}", handler.UpdateEmployee)
		routerGroup.Put("/{id}/post", handler.AssignPost)
		routerGroup.Delete("/{id}", handler.DeleteEmployee)
	})
}

// CreateEmployee registers a staff member and resolves their post by name.
// @Summary Create an employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Create Employee Request"
// @Success 201 {object} response.Data[dto.EmployeeResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/employees [post]
// @Security BearerAuth
func (handler *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	var req dto.CreateEmployeeRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	employee, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee created successfully")

	response.WithJSON(w, http.StatusCreated, employee)
}

// GetEmployees lists employees.
// @Summary Get all employees
// @Tags Employee
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param is_active query bool false "Filter by active flag"
// @Param username query string false "Filter by username"
// @Success 200 {object} response.Data[dto.GetEmployeesResponse]
// @Failure 416 {object} response.Error
// @Router /v1/employees [get]
// @Security BearerAuth
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
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

	if username := r.URL.Query().Get(model.FieldUsername); username != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUsername,
			Operator: gDto.FilterOperatorLike,
			Value:    username,
			Table:    model.TableName,
		})
	}

	employees, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

// GetEmployeeByID retrieves an employee with their post.
// @Summary Get an employee by ID
// @Tags Employee
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Data[dto.EmployeeResponse]
// @Failure 404 {object} response.Error
// @Router /v1/employees/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeByID")
	defer scope.End()

	employee, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// UpdateEmployee applies a partial patch. A new password is hashed before storing.
// @Summary Update an employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Update Employee Request"
// @Success 200 {object} response.Data[dto.EmployeeResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/employees/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	var req dto.UpdateEmployeeRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	employee, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// AssignPost changes the employee's post.
// @Summary Assign a post to an employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.AssignPostRequest true "Post id or post name"
// @Success 200 {object} response.Data[dto.EmployeeResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/employees/{id}/post [put]
// @Security BearerAuth
func (handler *Handler) AssignPost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignPost")
	defer scope.End()

	var req dto.AssignPostRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	employee, err := handler.service.AssignPost(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// DeleteEmployee deactivates an employee.
// @Summary Delete an employee
// @Tags Employee
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/employees/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	deleted, err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	if !deleted {
		response.WithMessage(w, http.StatusOK, "Employee is already inactive")

		return
	}

	response.WithMessage(w, http.StatusOK, "Employee deleted successfully")
}
