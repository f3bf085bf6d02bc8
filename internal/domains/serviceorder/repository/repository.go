package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/serviceorder/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type ServiceOrder interface {
	Insert(ctx context.Context, model model.ServiceOrder) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceOrder, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceOrder, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ServiceOrder]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ServiceOrder {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ServiceOrder](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
