package service_test

import (
	"context"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared/cache"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	defaultWait = time.Second
	defaultTick = 10 * time.Millisecond
)

type fixture struct {
	repo  *roomMocks.MockRoom
	s3    *s3Mocks.MockS3
	redis *miniredis.Miniredis
	svc   service.Room
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.External.S3.BucketName = "hotel"

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  roomMocks.NewMockRoom(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
		redis: mr,
	}
	f.svc = service.New(f.repo, cfg, cache.NewRedisCache(client, otelMocks.NewOtel()), otelMocks.NewOtel(), f.s3)

	return f
}

func TestRoomService_DeleteTwice(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil),
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil),
	)
	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	deleted, err := f.svc.Delete(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = f.svc.Delete(context.Background(), "r1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRoomService_DeleteUsesActiveGuard(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
			assert.Equal(t, false, fields[model.FieldIsActive])

			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "is_active = :is_active")
			assert.Equal(t, true, args[model.FieldIsActive])

			return 0, nil
		})
	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := f.svc.Delete(context.Background(), "missing")

	assert.True(t, failure.IsNotFound(err))
}

func TestRoomService_GetIsCached(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Room{ID: "r1", TypeRoom: "suite", Price: decimal.RequireFromString("150.50"), MaxGuests: 2, IsActive: true}, nil)

	first, err := f.svc.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "150.5", first.Price.String())

	require.Eventually(t, func() bool {
		return f.redis.Exists("room:get:r1")
	}, defaultWait, defaultTick)

	second, err := f.svc.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.Price.Equal(second.Price))
}

func TestRoomService_UploadPhotoReplacesOldObject(t *testing.T) {
	f := newFixture(t)

	header := &multipart.FileHeader{
		Filename: "front.png",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}

	gomock.InOrder(
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "r1", PhotoURL: "https://cdn.example.com/room/old.png"}, nil),
		f.s3.EXPECT().UploadFile(gomock.Any(), "hotel", model.EntityName, gomock.Any(), header, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, _ multipart.File, _ *multipart.FileHeader, name string) (string, error) {
				assert.True(t, strings.HasSuffix(name, ".png"))

				return "https://cdn.example.com/room/" + name, nil
			}),
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil),
		f.s3.EXPECT().GetObjectNameFromURL("hotel", "https://cdn.example.com/room/old.png").Return("room/old.png"),
		f.s3.EXPECT().DeleteFile(gomock.Any(), "hotel", "", "room/old.png").Return(nil),
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "r1", PhotoURL: "https://cdn.example.com/room/new.png"}, nil),
	)

	res, err := f.svc.UploadPhoto(context.Background(), dto.UploadPhotoRequest{Photo: header}, "r1")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/room/new.png", res.PhotoURL)
}

func TestRoomService_UploadPhotoCleansUpOnFailedUpdate(t *testing.T) {
	f := newFixture(t)

	header := &multipart.FileHeader{Filename: "front.jpg"}

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r1"}, nil)
	f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://cdn.example.com/room/x.jpg", nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), assert.AnError)
	f.s3.EXPECT().DeleteFile(gomock.Any(), "hotel", model.EntityName, gomock.Any()).Return(nil)

	_, err := f.svc.UploadPhoto(context.Background(), dto.UploadPhotoRequest{Photo: header}, "r1")

	assert.ErrorIs(t, err, assert.AnError)
}
