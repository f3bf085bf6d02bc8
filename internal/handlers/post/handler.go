package post

import (
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/post/model"
	"hotel/internal/domains/post/model/dto"
	"hotel/internal/domains/post/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Post
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Post, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/posts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePost)
		routerGroup.Get("/", handler.GetPosts)
		routerGroup.Get("/name/{name}", handler.GetPostByName)
		routerGroup.Get("/{id}", handler.GetPostByID)
		routerGroup.Patch("/{id}", handler.UpdatePost)
		routerGroup.Delete("/{id}", handler.DeletePost)
	})
}

// CreatePost creates a job role.
// @Summary Create a post
// @Tags Post
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Create Post Request"
// @Success 201 {object} response.Data[dto.PostResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/posts [post]
// @Security BearerAuth
func (handler *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePost")
	defer scope.End()

	var req dto.CreatePostRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	post, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create post")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Post created successfully")

	response.WithJSON(w, http.StatusCreated, post)
}

// GetPosts lists posts.
// @Summary Get all posts
// @Tags Post
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetPostsResponse]
// @Failure 416 {object} response.Error
// @Router /v1/posts [get]
// @Security BearerAuth
func (handler *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPosts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := queryParams.Validate(handler.cfg.App.Pagination.MaxLimit); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := r.URL.Query().Get(model.FieldName); name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	posts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get posts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, posts)
}

// GetPostByID retrieves a post by id.
// @Summary Get a post by ID
// @Tags Post
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Data[dto.PostResponse]
// @Failure 404 {object} response.Error
// @Router /v1/posts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPostByID")
	defer scope.End()

	post, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, post)
}

// GetPostByName retrieves a post by its unique name.
// @Summary Get a post by name
// @Tags Post
// @Produce json
// @Param name path string true "Post name"
// @Success 200 {object} response.Data[dto.PostResponse]
// @Failure 404 {object} response.Error
// @Router /v1/posts/name/{name} [get]
// @Security BearerAuth
func (handler *Handler) GetPostByName(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPostByName")
	defer scope.End()

	post, err := handler.service.GetByName(ctx, chi.URLParam(r, model.FieldName))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, post)
}

// UpdatePost applies a partial patch.
// @Summary Update a post
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.UpdatePostRequest true "Update Post Request"
// @Success 200 {object} response.Data[dto.PostResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/posts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePost")
	defer scope.End()

	var req dto.UpdatePostRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	post, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update post")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, post)
}

// DeletePost removes a post.
// @Summary Delete a post
// @Tags Post
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/posts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePost")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete post")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Post deleted successfully")
}
