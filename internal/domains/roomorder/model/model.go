package model

import (
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "room_orders"
	EntityName = "room_order"

	FieldID             = "id"
	FieldRoomID         = "room_id"
	FieldPayingClientID = "paying_client_id"
	FieldDateIn         = "date_in"
	FieldDateOut        = "date_out"
)

const (
	ParticipantTableName  = "client_room_orders"
	ParticipantEntityName = "room_order_participant"

	FieldRoomOrderID = "room_order_id"
	FieldClientID    = "client_id"

	ConstraintParticipantPrimaryKey = "client_room_orders_pkey"
)

type RoomOrder struct {
	ID             string    `db:"id"`
	RoomID         string    `db:"room_id"`
	PayingClientID string    `db:"paying_client_id"`
	DateIn         time.Time `db:"date_in"`
	DateOut        time.Time `db:"date_out"`
	model.Metadata
}

// Participant links a client staying in the room to the order. The paying
// client is never a participant of their own order.
type Participant struct {
	RoomOrderID string `db:"room_order_id"`
	ClientID    string `db:"client_id"`
}
