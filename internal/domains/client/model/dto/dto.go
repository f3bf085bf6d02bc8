package dto

import (
	"hotel/internal/domains/client/model"
	roomOrderDto "hotel/internal/domains/roomorder/model/dto"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateClientRequest struct {
	FirstName  string  `json:"first_name"  validate:"required,max=75"`
	MiddleName string  `json:"middle_name" validate:"omitempty,max=75"`
	LastName   string  `json:"last_name"   validate:"required,max=75"`
	Phone      string  `json:"phone"       validate:"required,e164"`
	Email      string  `json:"email"       validate:"required,email,max=320"`
	Password   string  `json:"password"    validate:"required,min=8,max=72"`
	RoomID     *string `json:"room_id"     validate:"omitempty,uuid"`
}

func (c *CreateClientRequest) ToModel(user, hashedPassword string) model.Client {
	now := timezone.Now()

	return model.Client{
		ID:             uuid.NewString(),
		RoomID:         c.RoomID,
		FirstName:      c.FirstName,
		MiddleName:     c.MiddleName,
		LastName:       c.LastName,
		Phone:          c.Phone,
		Email:          strings.ToLower(c.Email),
		HashedPassword: hashedPassword,
		IsActive:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateClientRequest only touches the fields present in the body.
type UpdateClientRequest struct {
	FirstName  *string `db:"first_name"  json:"first_name"  validate:"omitempty,min=1,max=75"`
	MiddleName *string `db:"middle_name" json:"middle_name" validate:"omitempty,max=75"`
	LastName   *string `db:"last_name"   json:"last_name"   validate:"omitempty,min=1,max=75"`
	Phone      *string `db:"phone"       json:"phone"       validate:"omitempty,e164"`
	Email      *string `db:"email"       json:"email"       validate:"omitempty,email,max=320"`
	Password   *string `db:"-"           json:"password"    validate:"omitempty,min=8,max=72"`
	RoomID     *string `db:"room_id"     json:"room_id"     validate:"omitempty,uuid"`
}

func (u *UpdateClientRequest) IsEmpty() bool {
	return u.FirstName == nil && u.MiddleName == nil && u.LastName == nil && u.Phone == nil &&
		u.Email == nil && u.Password == nil && u.RoomID == nil
}

// Fields expects the new password already hashed.
func (u *UpdateClientRequest) Fields(user, hashedPassword string) map[string]any {
	fields := shared.TransformFields(*u, user)

	if u.Email != nil {
		fields[model.FieldEmail] = strings.ToLower(*u.Email)
	}

	if hashedPassword != "" {
		fields[model.FieldHashedPassword] = hashedPassword
	}

	return fields
}

type ClientResponse struct {
	ID         string                           `json:"id"`
	RoomID     *string                          `json:"room_id"`
	FirstName  string                           `json:"first_name"`
	MiddleName string                           `json:"middle_name"`
	LastName   string                           `json:"last_name"`
	Phone      string                           `json:"phone"`
	Email      string                           `json:"email"`
	IsActive   bool                             `json:"is_active"`
	RoomOrders []roomOrderDto.RoomOrderResponse `json:"room_orders,omitempty"`
	gDto.Metadata
}

func (r *ClientResponse) FromModel(model model.Client) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.FirstName = model.FirstName
	r.MiddleName = model.MiddleName
	r.LastName = model.LastName
	r.Phone = model.Phone
	r.Email = model.Email
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetClientsResponse) FromModels(models []model.Client, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Clients = make([]ClientResponse, len(models))
	for i, mod := range models {
		r.Clients[i].FromModel(mod)
	}
}
