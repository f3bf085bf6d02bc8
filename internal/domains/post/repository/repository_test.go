package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/post/model"
	"hotel/internal/domains/post/repository"
	gModel "hotel/shared/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertIfAbsentQuery = "INSERT INTO posts (id, name, permissions, created_at, modified_at, created_by, modified_by) " +
		"VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (name) DO NOTHING"
	getByNameQuery = "SELECT posts.id, posts.name, posts.permissions, posts.created_at, posts.modified_at, posts.created_by, posts.modified_by " +
		"FROM posts WHERE (posts.name = $1)"
)

var postColumns = []string{"id", "name", "permissions", "created_at", "modified_at", "created_by", "modified_by"}

func TestInsertIfAbsentTx(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		inserted        int64
		storedID        string
		storedPerms     string
		wantID          string
		wantPermissions pq.StringArray
	}{
		{
			name:            "new name is inserted",
			inserted:        1,
			storedID:        "p-new",
			storedPerms:     "{rooms:read}",
			wantID:          "p-new",
			wantPermissions: pq.StringArray{"rooms:read"},
		},
		{
			name:            "existing name is reused as stored",
			inserted:        0,
			storedID:        "p-existing",
			storedPerms:     "{rooms:read,rooms:update}",
			wantID:          "p-existing",
			wantPermissions: pq.StringArray{"rooms:read", "rooms:update"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })

			sqlxDB := sqlx.NewDb(db, "postgres")
			repo := repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, otelMocks.NewOtel())

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(insertIfAbsentQuery)+"$").
				WithArgs("p-new", "housekeeping", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "manager", "manager").
				WillReturnResult(sqlmock.NewResult(0, tt.inserted))
			mock.ExpectPrepare(regexp.QuoteMeta(getByNameQuery)).
				ExpectQuery().
				WithArgs("housekeeping").
				WillReturnRows(sqlmock.NewRows(postColumns).
					AddRow(tt.storedID, "housekeeping", tt.storedPerms, now, now, "system", "system"))
			mock.ExpectCommit()

			tx, err := sqlxDB.Beginx()
			require.NoError(t, err)

			got, err := repo.InsertIfAbsentTx(context.Background(), tx, model.Post{
				ID:          "p-new",
				Name:        "housekeeping",
				Permissions: pq.StringArray{"rooms:read"},
				Metadata: gModel.Metadata{
					CreatedAt:  now,
					ModifiedAt: now,
					CreatedBy:  "manager",
					ModifiedBy: "manager",
				},
			})
			require.NoError(t, err)
			require.NoError(t, tx.Commit())

			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, "housekeeping", got.Name)
			assert.Equal(t, tt.wantPermissions, got.Permissions)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInsertIfAbsentTxInsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	repo := repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, otelMocks.NewOtel())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertIfAbsentQuery)).WillReturnError(&pq.Error{Code: "08006"})
	mock.ExpectRollback()

	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)

	_, err = repo.InsertIfAbsentTx(context.Background(), tx, model.Post{ID: "p1", Name: "housekeeping"})
	require.Error(t, err)
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}
