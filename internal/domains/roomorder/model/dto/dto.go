package dto

import (
	"hotel/internal/domains/roomorder/model"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomOrderRequest struct {
	RoomID         string   `json:"room_id"          validate:"required,uuid"`
	PayingClientID string   `json:"paying_client_id" validate:"required,uuid"`
	DateIn         string   `json:"date_in"          validate:"required,datetime=2006-01-02"`
	DateOut        string   `json:"date_out"         validate:"required,datetime=2006-01-02"`
	ParticipantIDs []string `json:"participant_ids"  validate:"omitempty,unique,dive,uuid"`
}

func (c *CreateRoomOrderRequest) Range() (daterange.Range, error) {
	return daterange.Parse(c.DateIn, c.DateOut)
}

func (c *CreateRoomOrderRequest) ToModel(user string, stay daterange.Range) model.RoomOrder {
	now := timezone.Now()

	return model.RoomOrder{
		ID:             uuid.NewString(),
		RoomID:         c.RoomID,
		PayingClientID: c.PayingClientID,
		DateIn:         stay.In,
		DateOut:        stay.Out,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func (c *CreateRoomOrderRequest) Participants(roomOrderID string) []model.Participant {
	res := make([]model.Participant, len(c.ParticipantIDs))
	for i, id := range c.ParticipantIDs {
		res[i] = model.Participant{RoomOrderID: roomOrderID, ClientID: id}
	}

	return res
}

type AddParticipantRequest struct {
	ClientID string `json:"client_id" validate:"required,uuid"`
}

type RoomOrderResponse struct {
	ID             string   `json:"id"`
	RoomID         string   `json:"room_id"`
	PayingClientID string   `json:"paying_client_id"`
	DateIn         string   `json:"date_in"`
	DateOut        string   `json:"date_out"`
	ParticipantIDs []string `json:"participant_ids,omitempty"`
	gDto.Metadata
}

func (r *RoomOrderResponse) FromModel(model model.RoomOrder) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.PayingClientID = model.PayingClientID
	r.DateIn = model.DateIn.Format(constant.DayDateFormat)
	r.DateOut = model.DateOut.Format(constant.DayDateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomOrdersResponse struct {
	RoomOrders []RoomOrderResponse `json:"room_orders"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetRoomOrdersResponse) FromModels(models []model.RoomOrder, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomOrders = FromModels(models)
}

func FromModels(models []model.RoomOrder) []RoomOrderResponse {
	res := make([]RoomOrderResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
