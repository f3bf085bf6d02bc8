package model

import (
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID       = "id"
	FieldName     = "name"
	FieldPrice    = "price"
	FieldIsActive = "is_active"
)

// Service is an extra a guest can order to their room.
type Service struct {
	ID       string          `db:"id"`
	Name     string          `db:"name"`
	Price    decimal.Decimal `db:"price"`
	IsActive bool            `db:"is_active"`
	model.Metadata
}
