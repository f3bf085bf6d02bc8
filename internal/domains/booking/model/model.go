package model

import (
	"fmt"
	"hotel/shared/daterange"
	"hotel/shared/model"
	"hotel/shared/transition"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldRoomID         = "room_id"
	FieldClientID       = "client_id"
	FieldDateIn         = "date_in"
	FieldDateOut        = "date_out"
	FieldStatus         = "status"
	FieldNumberOfGuests = "number_of_guests"

	ConstraintNoOverlap = "bookings_no_overlap"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusCanceled Status = "canceled"
)

// Lifecycle allows a booking to be canceled once and never reactivated.
var Lifecycle = transition.New(map[Status][]Status{
	StatusActive:   {StatusCanceled},
	StatusCanceled: {},
})

// ParseStatus reads a status filter. An empty value means active.
func ParseStatus(value string) (Status, error) {
	if value == "" {
		return StatusActive, nil
	}

	status := Status(value)
	if !Lifecycle.Known(status) {
		return status, fmt.Errorf("%w: %s", transition.ErrUnknownStatus, value)
	}

	return status, nil
}

type Booking struct {
	ID             string    `db:"id"`
	RoomID         string    `db:"room_id"`
	ClientID       string    `db:"client_id"`
	DateIn         time.Time `db:"date_in"`
	DateOut        time.Time `db:"date_out"`
	Status         Status    `db:"status"`
	NumberOfGuests int       `db:"number_of_guests"`
	model.Metadata
}

func (b Booking) Stay() daterange.Range {
	return daterange.Range{In: b.DateIn, Out: b.DateOut}
}
