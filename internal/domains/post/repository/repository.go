package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/post/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Post interface {
	Insert(ctx context.Context, model model.Post) error
	InsertIfAbsentTx(ctx context.Context, sqltx *sqlx.Tx, model model.Post) (model.Post, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Post, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Post, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Post, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Post]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Post {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Post](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertIfAbsentTx inserts the post unless one with the same name exists and returns the stored row.
// Concurrent callers with the same name end up with the same post.
func (r *repositoryImpl) InsertIfAbsentTx(ctx context.Context, sqltx *sqlx.Tx, post model.Post) (model.Post, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".post.InsertIfAbsentTx")
	defer scope.End()

	placeholders := make([]string, len(r.InsertColumns))
	for i, col := range r.InsertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO NOTHING",
		model.TableName, strings.Join(r.InsertColumns, ", "), strings.Join(placeholders, ", "), model.FieldName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := sqltx.NamedExecContext(ctx, query, post); err != nil {
		scope.TraceError(err)

		return model.Post{}, fmt.Errorf("failed to insert post if absent: %w", err)
	}

	stored, err := r.GetTx(ctx, sqltx, ByName(post.Name))
	if err != nil {
		scope.TraceError(err)

		return model.Post{}, err
	}

	return stored, nil
}

func ByName(name string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldName, Value: name, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}
