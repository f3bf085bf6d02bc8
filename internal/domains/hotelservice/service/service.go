package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/hotelservice/model"
	"hotel/internal/domains/hotelservice/model/dto"
	"hotel/internal/domains/hotelservice/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetService    = "service:get"
	cacheGetAllService = "service:gets"
)

const errServiceNotFound = "service not found"

type Service interface {
	Create(ctx context.Context, req dto.CreateServiceRequest) (dto.ServiceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetServicesResponse, error)
	Get(ctx context.Context, id string) (dto.ServiceResponse, error)
	Update(ctx context.Context, req dto.UpdateServiceRequest, id string) (dto.ServiceResponse, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type serviceImpl struct {
	repo  repository.Service
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Service, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Service {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequest) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	svc := req.ToModel(shared.Username(ctx))

	if err = s.repo.Insert(ctx, svc); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return res, fmt.Errorf("failed to create service: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(svc)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllService, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetService, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for service")

		return res, nil
	}

	svc, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == constant.Empty {
		return res, failure.NotFound(errServiceNotFound) // nolint:wrapcheck
	}

	res.FromModel(svc)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateServiceRequest, id string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if !req.IsEmpty() {
		affected, err := s.repo.Update(ctx, shared.TransformFields(req, shared.Username(ctx)), filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to update service")

			return res, fmt.Errorf("failed to update service: %w", err)
		}

		if affected == 0 {
			return res, failure.NotFound(errServiceNotFound) // nolint:wrapcheck
		}

		s.invalidate(ctx, id)
	}

	return s.fresh(ctx, filter)
}

// Delete deactivates the service. It reports false when the service was already inactive.
func (s *serviceImpl) Delete(ctx context.Context, id string) (deleted bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Update(ctx, map[string]any{
		model.FieldIsActive:      false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.Username(ctx),
	}, shared.FilterByIDAndActive(id, model.FieldID, model.FieldIsActive))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete service")

		return false, fmt.Errorf("failed to delete service: %w", err)
	}

	if affected > 0 {
		s.invalidate(ctx, id)

		return true, nil
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to check if service exists: %w", err)
	}

	if !exist {
		return false, failure.NotFound(errServiceNotFound) // nolint:wrapcheck
	}

	return false, nil
}

// fresh reads the row bypassing the cache.
func (s *serviceImpl) fresh(ctx context.Context, filter gDto.FilterGroup) (res dto.ServiceResponse, err error) {
	svc, err := s.repo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == constant.Empty {
		return res, failure.NotFound(errServiceNotFound) // nolint:wrapcheck
	}

	res.FromModel(svc)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetService, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete service from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
	}()
}
