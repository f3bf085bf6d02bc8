package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Listing narrows the room list by a type substring, the active flag and a minimum occupancy.
// Zero values leave the matching condition out.
func Listing(typeRoom string, active *bool, minGuests int) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if typeRoom != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters,
			gDto.Filter{Field: model.FieldTypeRoom, Value: typeRoom, Operator: gDto.FilterOperatorLike, Table: model.TableName})
	}

	if active != nil {
		filterGroup.Filters = append(filterGroup.Filters,
			gDto.Filter{Field: model.FieldIsActive, Value: *active, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if minGuests > 0 {
		filterGroup.Filters = append(filterGroup.Filters,
			gDto.Filter{Field: model.FieldMaxGuests, Value: minGuests, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName})
	}

	return filterGroup
}
