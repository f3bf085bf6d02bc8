package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	postMocks "hotel/internal/domains/post/mocks"
	"hotel/internal/domains/post/model"
	"hotel/internal/domains/post/model/dto"
	"hotel/internal/domains/post/service"
	"hotel/permissions"
	"hotel/shared/cache"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/alicebob/miniredis/v2"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Post, *postMocks.MockPost) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	repo := postMocks.NewMockPost(gomock.NewController(t))

	return service.New(repo, cfg, cache.NewRedisCache(client, otelMocks.NewOtel()), otelMocks.NewOtel()), repo
}

func TestPostService_Create(t *testing.T) {
	tests := []struct {
		name      string
		insertErr error
		wantCode  int
	}{
		{
			name: "new post",
		},
		{
			name:      "duplicate name",
			insertErr: &pq.Error{Code: "23505", Constraint: model.ConstraintUniqueName},
			wantCode:  http.StatusConflict,
		},
		{
			name:      "database failure",
			insertErr: errors.New("connection reset"),
			wantCode:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)

			repo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, post model.Post) error {
					assert.Equal(t, "Receptionist", post.Name)
					assert.Equal(t, pq.StringArray{permissions.BookingCreate}, post.Permissions)

					return tt.insertErr
				})

			res, err := svc.Create(context.Background(), dto.CreatePostRequest{
				Name:        "Receptionist",
				Permissions: []string{permissions.BookingCreate},
			})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, []string{permissions.BookingCreate}, res.Permissions)
		})
	}
}

func TestPostService_UpdateReplacesPermissions(t *testing.T) {
	svc, repo := newService(t)

	granted := []string{permissions.RoomsRead, permissions.RoomsUpdate}

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
			assert.Equal(t, pq.StringArray(granted), fields[model.FieldPermissions])
			assert.NotContains(t, fields, model.FieldName)

			return 1, nil
		})

	repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Post{ID: "p1", Name: "Housekeeping", Permissions: pq.StringArray(granted)}, nil)

	res, err := svc.Update(context.Background(), dto.UpdatePostRequest{Permissions: &granted}, "p1")

	require.NoError(t, err)
	assert.Equal(t, granted, res.Permissions)
}

func TestPostService_UpdateUnknownPost(t *testing.T) {
	svc, repo := newService(t)

	name := "Concierge"

	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

	_, err := svc.Update(context.Background(), dto.UpdatePostRequest{Name: &name}, "missing")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestPostService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantCode int
	}{
		{name: "existing post", affected: 1},
		{name: "unknown post", affected: 0, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)

			repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(tt.affected, nil)

			err := svc.Delete(context.Background(), "p1")

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestPostService_GetByNameMissing(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Post{}, nil)

	_, err := svc.GetByName(context.Background(), "Night auditor")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
