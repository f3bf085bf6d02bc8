package model

import (
	"hotel/shared/model"
	"hotel/shared/transition"
)

const (
	TableName  = "service_orders"
	EntityName = "service_order"

	FieldID        = "id"
	FieldServiceID = "service_id"
	FieldClientID  = "client_id"
	FieldRoomID    = "room_id"
	FieldStatus    = "status"
)

type Status string

const (
	StatusAccepted  Status = "accepted"
	StatusInProcess Status = "in_process"
	StatusFulfilled Status = "fulfilled"
	StatusCanceled  Status = "canceled"
)

// Lifecycle has no shortcut from accepted to fulfilled. Fulfilled and canceled are final.
var Lifecycle = transition.New(map[Status][]Status{
	StatusAccepted:  {StatusInProcess},
	StatusInProcess: {StatusFulfilled, StatusCanceled},
	StatusFulfilled: {},
	StatusCanceled:  {},
})

type ServiceOrder struct {
	ID        string `db:"id"`
	ServiceID string `db:"service_id"`
	ClientID  string `db:"client_id"`
	RoomID    string `db:"room_id"`
	Status    Status `db:"status"`
	model.Metadata
}
