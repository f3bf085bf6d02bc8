package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/post/model"
	"hotel/internal/domains/post/model/dto"
	"hotel/internal/domains/post/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPost    = "post:get"
	cacheGetAllPost = "post:gets"
)

const errDuplicateName = "post with this name already exists"

type Post interface {
	Create(ctx context.Context, req dto.CreatePostRequest) (dto.PostResponse, error)
	Get(ctx context.Context, id string) (dto.PostResponse, error)
	GetByName(ctx context.Context, name string) (dto.PostResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPostsResponse, error)
	Update(ctx context.Context, req dto.UpdatePostRequest, id string) (dto.PostResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Post
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Post, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Post {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePostRequest) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".post.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	post := req.ToModel(shared.Username(ctx))

	if err = s.repo.Insert(ctx, post); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict(errDuplicateName)
		}

		log.Error().Err(err).Msg("failed to create post")

		return res, fmt.Errorf("failed to create post: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(post)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".post.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPost, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for post")

		return res, nil
	}

	post, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get post")

		return res, fmt.Errorf("failed to get post: %w", err)
	}

	if post.ID == constant.Empty {
		return res, failure.NotFound("post not found") // nolint:wrapcheck
	}

	res.FromModel(post)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save post to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByName(ctx context.Context, name string) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".post.GetByName")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	post, err := s.repo.Get(ctx, repository.ByName(name))
	if err != nil {
		log.Error().Err(err).Msg("failed to get post by name")

		return res, fmt.Errorf("failed to get post by name: %w", err)
	}

	if post.ID == constant.Empty {
		return res, failure.NotFound("post not found") // nolint:wrapcheck
	}

	res.FromModel(post)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPostsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".post.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPost, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for posts")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count posts")

		return res, fmt.Errorf("failed to count posts: %w", err)
	}

	posts, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get posts")

		return res, fmt.Errorf("failed to get posts: %w", err)
	}

	res.FromModels(posts, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save posts to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePostRequest, id string) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".post.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if !req.IsEmpty() {
		affected, err := s.repo.Update(ctx, req.Fields(shared.Username(ctx)), filter)
		if err != nil {
			if gRepo.IsUniqueViolation(err) {
				return res, failure.Conflict(errDuplicateName)
			}

			log.Error().Err(err).Msg("failed to update post")

			return res, fmt.Errorf("failed to update post: %w", err)
		}

		if affected == 0 {
			return res, failure.NotFound("post not found") // nolint:wrapcheck
		}

		s.invalidate(ctx, id)
	}

	post, err := s.repo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get post: %w", err)
	}

	if post.ID == constant.Empty {
		return res, failure.NotFound("post not found") // nolint:wrapcheck
	}

	res.FromModel(post)

	return res, nil
}

// Delete removes the post physically. Employees holding it keep a null post.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".post.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete post")

		return fmt.Errorf("failed to delete post: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("post not found") // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPost, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete post from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPost)
	}()
}
