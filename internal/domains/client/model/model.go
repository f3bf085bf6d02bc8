package model

import "hotel/shared/model"

const (
	TableName  = "clients"
	EntityName = "client"

	FieldID             = "id"
	FieldRoomID         = "room_id"
	FieldFirstName      = "first_name"
	FieldMiddleName     = "middle_name"
	FieldLastName       = "last_name"
	FieldPhone          = "phone"
	FieldEmail          = "email"
	FieldHashedPassword = "hashed_password"
	FieldIsActive       = "is_active"

	ConstraintUniqueEmail = "clients_email_key"
)

type Client struct {
	ID             string  `db:"id"`
	RoomID         *string `db:"room_id"`
	FirstName      string  `db:"first_name"`
	MiddleName     string  `db:"middle_name"`
	LastName       string  `db:"last_name"`
	Phone          string  `db:"phone"`
	Email          string  `db:"email"`
	HashedPassword string  `db:"hashed_password"`
	IsActive       bool    `db:"is_active"`
	model.Metadata
}
