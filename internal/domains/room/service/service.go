package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
)

const errRoomNotFound = "room not found"

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (dto.RoomResponse, error)
	UploadPhoto(ctx context.Context, req dto.UploadPhotoRequest, id string) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room := req.ToModel(shared.Username(ctx))

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(errRoomNotFound) // nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if !req.IsEmpty() {
		affected, err := s.repo.Update(ctx, shared.TransformFields(req, shared.Username(ctx)), filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to update room")

			return res, fmt.Errorf("failed to update room: %w", err)
		}

		if affected == 0 {
			return res, failure.NotFound(errRoomNotFound) // nolint:wrapcheck
		}

		s.invalidate(ctx, id)
	}

	return s.fresh(ctx, filter)
}

// UploadPhoto stores the photo in object storage and points the room at it.
// The new object is removed when the row cannot be updated, the replaced one after it was.
func (s *serviceImpl) UploadPhoto(ctx context.Context, req dto.UploadPhotoRequest, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UploadPhoto")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetEntity(model.EntityName, id)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound(errRoomNotFound) // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString() + path.Ext(req.Photo.Filename)

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.PhotoFile, req.Photo, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room photo")

		return res, fmt.Errorf("failed to upload photo: %w", err)
	}

	_, err = s.repo.Update(ctx, map[string]any{
		model.FieldPhotoURL:      url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.Username(ctx),
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to save room photo")

		if delErr := s.s3.DeleteFile(ctx, bucketName, model.EntityName, filename); delErr != nil {
			log.Error().Err(delErr).Str("object", filename).Msg("failed to clean up uploaded photo")
		}

		return res, fmt.Errorf("failed to save photo: %w", err)
	}

	if current.PhotoURL != constant.Empty {
		if oldObject := s.s3.GetObjectNameFromURL(bucketName, current.PhotoURL); oldObject != constant.Empty {
			if delErr := s.s3.DeleteFile(ctx, bucketName, constant.Empty, oldObject); delErr != nil {
				log.Warn().Err(delErr).Str("object", oldObject).Msg("failed to delete replaced photo")
			}
		}
	}

	s.invalidate(ctx, id)

	return s.fresh(ctx, filter)
}

// Delete deactivates the room. It reports false when the room was already inactive.
func (s *serviceImpl) Delete(ctx context.Context, id string) (deleted bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetEntity(model.EntityName, id)

	affected, err := s.repo.Update(ctx, map[string]any{
		model.FieldIsActive:      false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.Username(ctx),
	}, shared.FilterByIDAndActive(id, model.FieldID, model.FieldIsActive))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return false, fmt.Errorf("failed to delete room: %w", err)
	}

	if affected > 0 {
		s.invalidate(ctx, id)

		return true, nil
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return false, failure.NotFound(errRoomNotFound) // nolint:wrapcheck
	}

	return false, nil
}

// fresh reads the row bypassing the cache.
func (s *serviceImpl) fresh(ctx context.Context, filter gDto.FilterGroup) (res dto.RoomResponse, err error) {
	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(errRoomNotFound) // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete room from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()
}
