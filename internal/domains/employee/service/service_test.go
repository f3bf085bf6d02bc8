package service_test

import (
	"context"
	"net/http"
	"testing"

	"hotel/infras/otel/mocks"
	employeeMocks "hotel/internal/domains/employee/mocks"
	"hotel/internal/domains/employee/model"
	"hotel/internal/domains/employee/model/dto"
	"hotel/internal/domains/employee/service"
	postMocks "hotel/internal/domains/post/mocks"
	postModel "hotel/internal/domains/post/model"
	postDto "hotel/internal/domains/post/model/dto"
	"hotel/permissions"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
	repoMocks "hotel/shared/repository/mocks"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo     *employeeMocks.MockEmployee
	postRepo *postMocks.MockPost
	tx       *repoMocks.MockTransaction
	svc      service.Employee
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     employeeMocks.NewMockEmployee(ctrl),
		postRepo: postMocks.NewMockPost(ctrl),
		tx:       repoMocks.NewMockTransaction(ctrl),
	}
	f.svc = service.New(f.repo, f.postRepo, f.tx, mocks.NewOtel())

	f.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).AnyTimes()

	return f
}

func ptr[T any](v T) *T {
	return &v
}

func TestEmployeeService_CreateReusesExistingPost(t *testing.T) {
	f := newFixture(t)

	existing := postModel.Post{ID: "post-1", Name: "Manager", Permissions: pq.StringArray{permissions.RoomsRead}}

	f.postRepo.EXPECT().
		InsertIfAbsentTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, candidate postModel.Post) (postModel.Post, error) {
			assert.Equal(t, "Manager", candidate.Name)

			return existing, nil
		})

	var stored model.Employee

	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, employee model.Employee) error {
			stored = employee

			return nil
		})

	res, err := f.svc.Create(context.Background(), dto.CreateEmployeeRequest{
		Username: "alice",
		Password: "correct-horse",
		Post:     postDto.CreatePostRequest{Name: "Manager", Permissions: []string{permissions.BookingDelete}},
	})
	require.NoError(t, err)

	require.NotNil(t, stored.PostID)
	assert.Equal(t, "post-1", *stored.PostID)
	assert.True(t, stored.IsActive)
	assert.NoError(t, password.Verify("correct-horse", stored.HashedPassword))

	require.NotNil(t, res.Post)
	assert.Equal(t, "post-1", res.Post.ID)
	assert.Equal(t, []string{permissions.RoomsRead}, res.Post.Permissions)
}

func TestEmployeeService_CreateDuplicateUsername(t *testing.T) {
	f := newFixture(t)

	f.postRepo.EXPECT().
		InsertIfAbsentTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(postModel.Post{ID: "post-1", Name: "Manager"}, nil)
	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&pq.Error{Code: "23505", Constraint: model.ConstraintUniqueUsername})

	_, err := f.svc.Create(context.Background(), dto.CreateEmployeeRequest{
		Username: "alice",
		Password: "correct-horse",
		Post:     postDto.CreatePostRequest{Name: "Manager"},
	})

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestEmployeeService_AssignPost(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.AssignPostRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:     "both id and name",
			req:      dto.AssignPostRequest{PostID: ptr("post-1"), PostName: ptr("Manager")},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "neither id nor name",
			req:      dto.AssignPostRequest{},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown post id",
			req:  dto.AssignPostRequest{PostID: ptr("post-9")},
			setupMock: func(f fixture) {
				f.postRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(postModel.Post{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown employee",
			req:  dto.AssignPostRequest{PostName: ptr("Cleaner")},
			setupMock: func(f fixture) {
				f.postRepo.EXPECT().
					InsertIfAbsentTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(postModel.Post{ID: "post-2", Name: "Cleaner"}, nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "by name",
			req:  dto.AssignPostRequest{PostName: ptr("Cleaner")},
			setupMock: func(f fixture) {
				f.postRepo.EXPECT().
					InsertIfAbsentTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(postModel.Post{ID: "post-2", Name: "Cleaner"}, nil)
				f.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
						assert.Equal(t, "post-2", fields[model.FieldPostID])

						return 1, nil
					})
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Employee{
					ID:       "emp-1",
					Username: "bob",
					PostID:   ptr("post-2"),
					PostName: ptr("Cleaner"),
					IsActive: true,
				}, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			res, err := f.svc.AssignPost(context.Background(), tt.req, "emp-1")
			if tt.wantCode != http.StatusOK {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			require.NotNil(t, res.Post)
			assert.Equal(t, "Cleaner", res.Post.Name)
			assert.Empty(t, res.Post.Permissions)
		})
	}
}

func TestEmployeeService_DeleteTwice(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil),
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil),
	)
	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	deleted, err := f.svc.Delete(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = f.svc.Delete(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestEmployeeService_DeleteUnknown(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := f.svc.Delete(context.Background(), "missing")

	assert.True(t, failure.IsNotFound(err))
}
