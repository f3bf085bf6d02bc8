package room

import (
	"hotel/config"
	"hotel/infras/otel"
	bookingService "hotel/internal/domains/booking/service"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/internal/domains/room/service"
	roomOrderDto "hotel/internal/domains/roomorder/model/dto"
	roomOrderRepository "hotel/internal/domains/roomorder/repository"
	roomOrderService "hotel/internal/domains/roomorder/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const formFieldPhoto = "photo"

type Handler struct {
	service          service.Room
	bookingService   bookingService.Booking
	roomOrderService roomOrderService.RoomOrder
	cfg              *config.Config
	otel             otel.Otel
}

func New(
	service service.Room,
	bookingService bookingService.Booking,
	roomOrderService roomOrderService.RoomOrder,
	cfg *config.Config,
	otel otel.Otel,
) Handler {
	return Handler{
		service:          service,
		bookingService:   bookingService,
		roomOrderService: roomOrderService,
		cfg:              cfg,
		otel:             otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
		routerGroup.Post("/{id}/photo", handler.UploadPhoto)
		routerGroup.Get("/{id}/availability", handler.GetAvailability)
		routerGroup.Get("/{id}/room-orders", handler.GetRoomOrders)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	var req dto.CreateRoomRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room created successfully by " + shared.Username(ctx))

	response.WithJSON(w, http.StatusCreated, room)
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type_room query string false "Filter by room type"
// @Param is_active query boolean false "Filter by active status"
// @Param min_guests query int false "Only rooms taking at least this many guests"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 416 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := queryParams.Validate(handler.cfg.App.Pagination.MaxLimit); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := r.URL.Query()

	minGuests := 0
	if raw := query.Get(constant.RequestParamMinGuests); raw != constant.Empty {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.WithError(w, failure.BadRequestFromString("min_guests must be a positive integer"))

			return
		}

		minGuests = parsed
	}

	filterGroup := repository.Listing(
		query.Get(constant.RequestParamTypeRoom),
		shared.ConvertStringToBool(query.Get(constant.RequestParamIsActive)),
		minGuests,
	)

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom applies a partial patch to a room.
// @Summary Update a room by ID
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	var req dto.UpdateRoomRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully by " + shared.Username(ctx))

	response.WithJSON(w, http.StatusOK, room)
}

// DeleteRoom deactivates a room.
// @Summary Delete a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	deleted, err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	if !deleted {
		response.WithMessage(w, http.StatusOK, "Room is already inactive")

		return
	}

	scope.AddEvent("Room deleted successfully by " + shared.Username(ctx))

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}

// UploadPhoto replaces the room photo.
// @Summary Upload a room photo
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param photo formData file true "Room photo (png or jpeg, up to 2 MB)"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/photo [post]
// @Security BearerAuth
func (handler *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	var req dto.UploadPhotoRequest

	file, fileHeader, err := r.FormFile(formFieldPhoto)
	if err == nil {
		req.Photo = fileHeader
		req.PhotoFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.UploadPhoto(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload room photo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// GetAvailability reports whether the room is free for every night of the stay.
// Any failure other than a client error is answered as unavailable.
// @Summary Check room availability
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Param date_in query string true "Check-in date (YYYY-MM-DD)"
// @Param date_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id}/availability [get]
// @Security BearerAuth
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	stay, err := daterange.Parse(r.URL.Query().Get(constant.RequestParamDateIn), r.URL.Query().Get(constant.RequestParamDateOut))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	available, err := handler.bookingService.IsRoomAvailable(ctx, id, stay)
	if err != nil && failure.GetCode(err) != http.StatusInternalServerError {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", id).Msg("availability unknown, reporting the room as unavailable")
	}

	response.WithJSON(w, http.StatusOK, dto.AvailabilityResponse{
		RoomID:    id,
		DateIn:    stay.In.Format(constant.DayDateFormat),
		DateOut:   stay.Out.Format(constant.DayDateFormat),
		Available: available,
	})
}

// GetRoomOrders lists the room orders of one room.
// @Summary Get room orders of a room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[roomOrderDto.GetRoomOrdersResponse]
// @Failure 404 {object} response.Error
// @Failure 416 {object} response.Error
// @Router /v1/rooms/{id}/room-orders [get]
// @Security BearerAuth
func (handler *Handler) GetRoomOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomOrdersOfRoom")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := queryParams.Validate(handler.cfg.App.Pagination.MaxLimit); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if _, err := handler.service.Get(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	var orders roomOrderDto.GetRoomOrdersResponse

	orders, err := handler.roomOrderService.GetAll(ctx, queryParams, roomOrderRepository.ByRoom(id))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room orders of room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, orders)
}
