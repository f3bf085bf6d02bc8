package dto

import (
	"hotel/internal/domains/hotelservice/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateServiceRequest struct {
	Name     string          `json:"name"      validate:"required,max=100"`
	Price    decimal.Decimal `json:"price"     validate:"money"`
	IsActive *bool           `json:"is_active"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	now := timezone.Now()

	return model.Service{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Price:    c.Price,
		IsActive: active,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name     *string          `db:"name"      json:"name"      validate:"omitempty,min=1,max=100"`
	Price    *decimal.Decimal `db:"price"     json:"price"     validate:"omitempty,money"`
	IsActive *bool            `db:"is_active" json:"is_active"`
}

func (u *UpdateServiceRequest) IsEmpty() bool {
	return u.Name == nil && u.Price == nil && u.IsActive == nil
}

type ServiceResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	IsActive bool            `json:"is_active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Price = model.Price
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
