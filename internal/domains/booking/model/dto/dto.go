package dto

import (
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID         string `json:"room_id"          validate:"required,uuid"`
	ClientID       string `json:"client_id"        validate:"required,uuid"`
	DateIn         string `json:"date_in"          validate:"required,datetime=2006-01-02"`
	DateOut        string `json:"date_out"         validate:"required,datetime=2006-01-02"`
	NumberOfGuests int    `json:"number_of_guests" validate:"gte=1"`
}

func (c *CreateBookingRequest) Range() (daterange.Range, error) {
	return daterange.Parse(c.DateIn, c.DateOut)
}

func (c *CreateBookingRequest) ToModel(user string, stay daterange.Range) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:             uuid.NewString(),
		RoomID:         c.RoomID,
		ClientID:       c.ClientID,
		DateIn:         stay.In,
		DateOut:        stay.Out,
		Status:         model.StatusActive,
		NumberOfGuests: c.NumberOfGuests,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID             string       `json:"id"`
	RoomID         string       `json:"room_id"`
	ClientID       string       `json:"client_id"`
	DateIn         string       `json:"date_in"`
	DateOut        string       `json:"date_out"`
	Status         model.Status `json:"status"`
	NumberOfGuests int          `json:"number_of_guests"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.ClientID = model.ClientID
	r.DateIn = model.DateIn.Format(constant.DayDateFormat)
	r.DateOut = model.DateOut.Format(constant.DayDateFormat)
	r.Status = model.Status
	r.NumberOfGuests = model.NumberOfGuests
	r.Metadata.FromModel(model.Metadata)
}

// CancelBookingResponse tells whether this call performed the cancellation.
type CancelBookingResponse struct {
	ID       string       `json:"id"`
	Status   model.Status `json:"status"`
	Canceled bool         `json:"canceled"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
