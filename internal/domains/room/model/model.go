package model

import (
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID        = "id"
	FieldTypeRoom  = "type_room"
	FieldPrice     = "price"
	FieldArea      = "area"
	FieldMaxGuests = "max_guests"
	FieldPhotoURL  = "photo_url"
	FieldIsActive  = "is_active"
)

type Room struct {
	ID        string          `db:"id"`
	TypeRoom  string          `db:"type_room"`
	Price     decimal.Decimal `db:"price"`
	Area      int             `db:"area"`
	MaxGuests int             `db:"max_guests"`
	PhotoURL  string          `db:"photo_url"`
	IsActive  bool            `db:"is_active"`
	model.Metadata
}

func (r Room) Fits(guests int) bool {
	return guests > 0 && guests <= r.MaxGuests
}
