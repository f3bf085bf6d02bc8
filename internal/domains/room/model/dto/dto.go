package dto

import (
	"mime/multipart"

	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	TypeRoom  string          `json:"type_room"  validate:"required,max=50"`
	Price     decimal.Decimal `json:"price"      validate:"money"`
	Area      int             `json:"area"       validate:"gte=1"`
	MaxGuests int             `json:"max_guests" validate:"gte=1"`
	IsActive  *bool           `json:"is_active"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	now := timezone.Now()

	return model.Room{
		ID:        uuid.NewString(),
		TypeRoom:  c.TypeRoom,
		Price:     c.Price,
		Area:      c.Area,
		MaxGuests: c.MaxGuests,
		IsActive:  active,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	TypeRoom  *string          `db:"type_room"  json:"type_room"  validate:"omitempty,min=1,max=50"`
	Price     *decimal.Decimal `db:"price"      json:"price"      validate:"omitempty,money"`
	Area      *int             `db:"area"       json:"area"       validate:"omitempty,gte=1"`
	MaxGuests *int             `db:"max_guests" json:"max_guests" validate:"omitempty,gte=1"`
	IsActive  *bool            `db:"is_active"  json:"is_active"`
}

func (u *UpdateRoomRequest) IsEmpty() bool {
	return u.TypeRoom == nil && u.Price == nil && u.Area == nil && u.MaxGuests == nil && u.IsActive == nil
}

type UploadPhotoRequest struct {
	Photo     *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	PhotoFile multipart.File        `validate:"-"`
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	DateIn    string `json:"date_in"`
	DateOut   string `json:"date_out"`
	Available bool   `json:"available"`
}

type RoomResponse struct {
	ID        string          `json:"id"`
	TypeRoom  string          `json:"type_room"`
	Price     decimal.Decimal `json:"price"`
	Area      int             `json:"area"`
	MaxGuests int             `json:"max_guests"`
	PhotoURL  string          `json:"photo_url"`
	IsActive  bool            `json:"is_active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.TypeRoom = model.TypeRoom
	r.Price = model.Price
	r.Area = model.Area
	r.MaxGuests = model.MaxGuests
	r.PhotoURL = model.PhotoURL
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
