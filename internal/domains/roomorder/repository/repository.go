package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/roomorder/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type RoomOrder interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.RoomOrder) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomOrder, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.RoomOrder, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomOrder, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertParticipantsTx(ctx context.Context, sqltx *sqlx.Tx, participants []model.Participant) error
	GetParticipantIDs(ctx context.Context, roomOrderID string) ([]string, error)
	GetByParticipant(ctx context.Context, clientID string) ([]model.RoomOrder, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomOrder]
	participants gRepo.Repository[model.Participant]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomOrder {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomOrder](model.EntityName, model.TableName, model.FieldID, db, otel),
		participants: gRepo.NewRepository[model.Participant](
			model.ParticipantEntityName, model.ParticipantTableName, model.FieldRoomOrderID, db, otel),
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) InsertParticipantsTx(ctx context.Context, sqltx *sqlx.Tx, participants []model.Participant) error {
	return r.participants.InsertBulkTx(ctx, sqltx, participants)
}

func (r *repositoryImpl) GetParticipantIDs(ctx context.Context, roomOrderID string) ([]string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_order.GetParticipantIDs")
	defer scope.End()

	rows, err := r.participants.GetAll(ctx, gDto.QueryParams{}, byColumn(model.FieldRoomOrderID, roomOrderID))
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ClientID
	}

	return ids, nil
}

// GetByParticipant lists the orders the client takes part in, oldest stay first.
func (r *repositoryImpl) GetByParticipant(ctx context.Context, clientID string) ([]model.RoomOrder, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_order.GetByParticipant")
	defer scope.End()

	rows, err := r.participants.GetAll(ctx, gDto.QueryParams{}, byColumn(model.FieldClientID, clientID))
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	if len(rows) == 0 {
		return []model.RoomOrder{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.RoomOrderID
	}

	orders, err := r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDateIn, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: ids, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	})
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get room orders of participant: %w", err)
	}

	return orders, nil
}

func byColumn(field, value string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq, Table: model.ParticipantTableName},
		},
	}
}

// ByRoom narrows a room order listing to one room. An empty id matches every room.
func ByRoom(roomID string) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if roomID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
