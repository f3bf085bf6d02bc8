package dto

import (
	"hotel/internal/domains/serviceorder/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceOrderRequest struct {
	ServiceID string `json:"service_id" validate:"required,uuid"`
	ClientID  string `json:"client_id"  validate:"required,uuid"`
	RoomID    string `json:"room_id"    validate:"required,uuid"`
}

func (c *CreateServiceOrderRequest) ToModel(user string) model.ServiceOrder {
	now := timezone.Now()

	return model.ServiceOrder{
		ID:        uuid.NewString(),
		ServiceID: c.ServiceID,
		ClientID:  c.ClientID,
		RoomID:    c.RoomID,
		Status:    model.StatusAccepted,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type TransitionRequest struct {
	Status model.Status `json:"status" validate:"required,oneof=accepted in_process fulfilled canceled"`
}

// TransitionResponse tells whether this call moved the order. Changed is false when
// the order already was in the requested status.
type TransitionResponse struct {
	ID      string       `json:"id"`
	Status  model.Status `json:"status"`
	Changed bool         `json:"changed"`
}

type ServiceOrderResponse struct {
	ID        string       `json:"id"`
	ServiceID string       `json:"service_id"`
	ClientID  string       `json:"client_id"`
	RoomID    string       `json:"room_id"`
	Status    model.Status `json:"status"`
	gDto.Metadata
}

func (r *ServiceOrderResponse) FromModel(model model.ServiceOrder) {
	r.ID = model.ID
	r.ServiceID = model.ServiceID
	r.ClientID = model.ClientID
	r.RoomID = model.RoomID
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetServiceOrdersResponse struct {
	ServiceOrders []ServiceOrderResponse `json:"service_orders"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetServiceOrdersResponse) FromModels(models []model.ServiceOrder, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ServiceOrders = make([]ServiceOrderResponse, len(models))
	for i, mod := range models {
		r.ServiceOrders[i].FromModel(mod)
	}
}
