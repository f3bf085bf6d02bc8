package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/employee/model"
	"hotel/internal/domains/employee/model/dto"
	"hotel/internal/domains/employee/repository"
	postModel "hotel/internal/domains/post/model"
	postDto "hotel/internal/domains/post/model/dto"
	postRepository "hotel/internal/domains/post/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errDuplicateUsername = "employee with this username already exists"
	errEmployeeNotFound  = "employee not found"
	errPostNotFound      = "post not found"
)

type Employee interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error)
	Get(ctx context.Context, id string) (dto.EmployeeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEmployeesResponse, error)
	Update(ctx context.Context, req dto.UpdateEmployeeRequest, id string) (dto.EmployeeResponse, error)
	AssignPost(ctx context.Context, req dto.AssignPostRequest, id string) (dto.EmployeeResponse, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type serviceImpl struct {
	repo     repository.Employee
	postRepo postRepository.Post
	tx       gRepo.Transaction
	otel     otel.Otel
}

func New(repo repository.Employee, postRepo postRepository.Post, tx gRepo.Transaction, otel otel.Otel) Employee {
	return &serviceImpl{
		repo:     repo,
		postRepo: postRepo,
		tx:       tx,
		otel:     otel,
	}
}

// Create stores the employee together with its post. A post whose name already
// exists is reused as stored, the requested permissions are ignored in that case.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEmployeeRequest) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.Username(ctx)

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	var employee model.Employee

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		post, err := s.postRepo.InsertIfAbsentTx(ctx, tx, req.Post.ToModel(user))
		if err != nil {
			return fmt.Errorf("failed to resolve post: %w", err)
		}

		employee = req.ToModel(user, hashed, post.ID)
		employee.PostName = &post.Name
		employee.PostPermissions = post.Permissions

		return s.repo.InsertTx(ctx, tx, employee)
	})
	if err != nil {
		if gRepo.IsUniqueViolation(err, model.ConstraintUniqueUsername) {
			return res, failure.Conflict(errDuplicateUsername)
		}

		log.Error().Err(err).Msg("failed to create employee")

		return res, fmt.Errorf("failed to create employee: %w", err)
	}

	res.FromModel(employee)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	employee, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		return res, failure.NotFound(errEmployeeNotFound) // nolint:wrapcheck
	}

	res.FromModel(employee)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count employees")

		return res, fmt.Errorf("failed to count employees: %w", err)
	}

	employees, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	res.FromModels(employees, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEmployeeRequest, id string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.IsEmpty() {
		hashed, err := password.HashOptional(req.Password)
		if err != nil {
			return res, fmt.Errorf("failed to hash password: %w", err)
		}

		affected, err := s.repo.Update(ctx, req.Fields(shared.Username(ctx), hashed), shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			switch {
			case gRepo.IsUniqueViolation(err, model.ConstraintUniqueUsername):
				return res, failure.Conflict(errDuplicateUsername)
			case gRepo.IsForeignKeyViolation(err):
				return res, failure.NotFound(errPostNotFound) // nolint:wrapcheck
			}

			log.Error().Err(err).Msg("failed to update employee")

			return res, fmt.Errorf("failed to update employee: %w", err)
		}

		if affected == 0 {
			return res, failure.NotFound(errEmployeeNotFound) // nolint:wrapcheck
		}
	}

	return s.Get(ctx, id)
}

// AssignPost points the employee at an existing post by id, or at the post with
// the given name, creating it without permissions when absent.
func (s *serviceImpl) AssignPost(ctx context.Context, req dto.AssignPostRequest, id string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.AssignPost")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return res, err
	}

	user := shared.Username(ctx)

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		post, txErr := s.resolvePostTx(ctx, tx, req, user)
		if txErr != nil {
			return txErr
		}

		affected, txErr := s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldPostID:        post.ID,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(id, model.FieldID, model.TableName))
		if txErr != nil {
			return fmt.Errorf("failed to assign post: %w", txErr)
		}

		if affected == 0 {
			return failure.NotFound(errEmployeeNotFound) // nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("employee", id).Msg("failed to assign post")

		return res, err
	}

	return s.Get(ctx, id)
}

func (s *serviceImpl) resolvePostTx(ctx context.Context, tx *sqlx.Tx, req dto.AssignPostRequest, user string) (postModel.Post, error) {
	if req.PostName != nil {
		create := postDto.CreatePostRequest{Name: *req.PostName}

		post, err := s.postRepo.InsertIfAbsentTx(ctx, tx, create.ToModel(user))
		if err != nil {
			return post, fmt.Errorf("failed to resolve post: %w", err)
		}

		return post, nil
	}

	post, err := s.postRepo.GetTx(ctx, tx, shared.FilterByID(*req.PostID, postModel.FieldID, postModel.TableName))
	if err != nil {
		return post, fmt.Errorf("failed to get post: %w", err)
	}

	if post.ID == constant.Empty {
		return post, failure.NotFound(errPostNotFound) // nolint:wrapcheck
	}

	return post, nil
}

// Delete deactivates the employee. It reports false when the employee was already inactive.
func (s *serviceImpl) Delete(ctx context.Context, id string) (deleted bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".employee.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Update(ctx, map[string]any{
		model.FieldIsActive:      false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.Username(ctx),
	}, shared.FilterByIDAndActive(id, model.FieldID, model.FieldIsActive))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete employee")

		return false, fmt.Errorf("failed to delete employee: %w", err)
	}

	if affected > 0 {
		return true, nil
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if !exist {
		return false, failure.NotFound(errEmployeeNotFound) // nolint:wrapcheck
	}

	return false, nil
}
