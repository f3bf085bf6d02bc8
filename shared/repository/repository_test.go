package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/shared/dto"
	"hotel/shared/model"
	"hotel/shared/repository"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomRow struct {
	ID       string `db:"id"`
	TypeRoom string `db:"type_room"`
	IsActive bool   `db:"is_active"`
	model.Metadata
}

const roomColumns = "rooms.id, rooms.type_room, rooms.is_active, rooms.created_at, rooms.modified_at, rooms.created_by, rooms.modified_by"

func newRepository(t *testing.T) (repository.Repository[roomRow], *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.NewRepository[roomRow]("room", "rooms", "id", conn, mocks.NewOtel()), sqlxDB, mock
}

func activeByID(id string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "id", Value: id, Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq},
		},
	}
}

func TestRepository_UpdateCompareAndSwap(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "row still active", affected: 1},
		{name: "row already inactive", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newRepository(t)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms SET is_active = $1, modified_by = $2 WHERE (id = $3 AND is_active = $4)")).
				WithArgs(false, "reception", "r1", true).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			affected, err := repo.Update(context.Background(), map[string]any{
				"is_active":   false,
				"modified_by": "reception",
				"created_at":  time.Now(),
			}, activeByID("r1"))

			require.NoError(t, err)
			assert.Equal(t, tt.affected, affected)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateRequiresFilter(t *testing.T) {
	repo, _, mock := newRepository(t)

	_, err := repo.Update(context.Background(), map[string]any{"is_active": false}, dto.FilterGroup{})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetMissingReturnsZero(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT " + roomColumns + " FROM rooms WHERE (id = $1)")).
		ExpectQuery().
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background(), dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "id", Value: "missing", Operator: dto.FilterOperatorEq},
	}})

	require.NoError(t, err)
	assert.Empty(t, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetForUpdateTx(t *testing.T) {
	repo, db, mock := newRepository(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta("SELECT " + roomColumns + " FROM rooms WHERE (id = $1) FOR UPDATE")).
		ExpectQuery().
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "type_room", "is_active", "created_at", "modified_at", "created_by", "modified_by"}).
			AddRow("r1", "suite", true, now, now, "system", "system"))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	got, err := repo.GetForUpdateTx(context.Background(), tx, dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "id", Value: "r1", Operator: dto.FilterOperatorEq},
	}})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, "suite", got.TypeRoom)
	assert.True(t, got.IsActive)
	assert.Equal(t, now, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAllPaginationAndSort(t *testing.T) {
	tests := []struct {
		name   string
		params dto.QueryParams
		query  string
		args   []driver.Value
	}{
		{
			name:   "known sort column with offset",
			params: dto.QueryParams{Limit: 5, Offset: 10, SortBy: "type_room", SortDir: dto.SortDirAsc},
			query:  "SELECT " + roomColumns + " FROM rooms WHERE (is_active = $1) ORDER BY rooms.type_room ASC LIMIT $2 OFFSET $3",
			args:   []driver.Value{true, 5, 10},
		},
		{
			name:   "unknown sort column is ignored",
			params: dto.QueryParams{Page: 2, Limit: 10, SortBy: "type_room; DROP TABLE rooms", SortDir: dto.SortDirAsc},
			query:  "SELECT " + roomColumns + " FROM rooms WHERE (is_active = $1) LIMIT $2 OFFSET $3",
			args:   []driver.Value{true, 10, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newRepository(t)

			mock.ExpectPrepare(regexp.QuoteMeta(tt.query) + "$").
				ExpectQuery().
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows([]string{"id", "type_room", "is_active", "created_at", "modified_at", "created_by", "modified_by"}))

			got, err := repo.GetAll(context.Background(), tt.params, dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq},
			}})

			require.NoError(t, err)
			assert.Empty(t, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ExistTx(t *testing.T) {
	repo, db, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM rooms WHERE (id = $1) )")).
		ExpectQuery().
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	tx, err := db.Beginx()
	require.NoError(t, err)

	exist, err := repo.ExistTx(context.Background(), tx, dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "id", Value: "r1", Operator: dto.FilterOperatorEq},
	}})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	assert.True(t, exist)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms WHERE (id = $1)")).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(context.Background(), dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "id", Value: "r1", Operator: dto.FilterOperatorEq},
	}})

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MalformedIDMatchesNothing(t *testing.T) {
	invalidUUID := &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "nope"`}
	byID := dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "id", Value: "nope", Operator: dto.FilterOperatorEq},
	}}

	tests := []struct {
		name   string
		expect func(mock sqlmock.Sqlmock)
		call   func(repo repository.Repository[roomRow]) (any, error)
		want   any
	}{
		{
			name: "get",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(regexp.QuoteMeta("FROM rooms WHERE (id = $1)")).ExpectQuery().WillReturnError(invalidUUID)
			},
			call: func(repo repository.Repository[roomRow]) (any, error) {
				got, err := repo.Get(context.Background(), byID)

				return got.ID, err
			},
			want: "",
		},
		{
			name: "exist",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(regexp.QuoteMeta("SELECT EXISTS")).ExpectQuery().WillReturnError(invalidUUID)
			},
			call: func(repo repository.Repository[roomRow]) (any, error) {
				return repo.Exist(context.Background(), byID)
			},
			want: false,
		},
		{
			name: "count",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT")).ExpectQuery().WillReturnError(invalidUUID)
			},
			call: func(repo repository.Repository[roomRow]) (any, error) {
				return repo.Count(context.Background(), byID)
			},
			want: 0,
		},
		{
			name: "update",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms SET")).WillReturnError(invalidUUID)
			},
			call: func(repo repository.Repository[roomRow]) (any, error) {
				return repo.Update(context.Background(), map[string]any{"is_active": false}, byID)
			},
			want: int64(0),
		},
		{
			name: "delete",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms")).WillReturnError(invalidUUID)
			},
			call: func(repo repository.Repository[roomRow]) (any, error) {
				return repo.Delete(context.Background(), byID)
			},
			want: int64(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newRepository(t)
			tt.expect(mock)

			got, err := tt.call(repo)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_OtherErrorsPropagate(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms SET")).WillReturnError(&pq.Error{Code: "08006"})

	_, err := repo.Update(context.Background(), map[string]any{"is_active": false}, dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "id", Value: "r1", Operator: dto.FilterOperatorEq},
	}})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
