package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	argStayIn  = "stay_in"
	argStayOut = "stay_out"
)

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Overlapping matches active bookings of the room whose stay shares a night with stay.
// Two half-open stays overlap when each one starts before the other ends.
func Overlapping(roomID string, stay daterange.Range) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: string(model.StatusActive), Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{
				Field:    model.FieldDateIn,
				ArgName:  argStayOut,
				Value:    daterange.Day(stay.Out),
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDateOut,
				ArgName:  argStayIn,
				Value:    daterange.Day(stay.In),
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		},
	}
}

// Listing filters bookings by status and, when given, by room and client.
func Listing(status model.Status, roomID, clientID string) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: string(status), Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	if roomID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters,
			gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if clientID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters,
			gDto.Filter{Field: model.FieldClientID, Value: clientID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return filterGroup
}
