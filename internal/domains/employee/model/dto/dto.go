package dto

import (
	"hotel/internal/domains/employee/model"
	postDto "hotel/internal/domains/post/model/dto"
	"hotel/shared"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	Username string                    `json:"username" validate:"required,min=3,max=50"`
	Password string                    `json:"password" validate:"required,min=8,max=72"`
	Post     postDto.CreatePostRequest `json:"post"     validate:"required"`
}

func (c *CreateEmployeeRequest) ToModel(user, hashedPassword, postID string) model.Employee {
	now := timezone.Now()

	return model.Employee{
		ID:             uuid.NewString(),
		Username:       c.Username,
		HashedPassword: hashedPassword,
		PostID:         &postID,
		IsActive:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEmployeeRequest struct {
	Username *string `db:"username" json:"username" validate:"omitempty,min=3,max=50"`
	Password *string `db:"-"        json:"password" validate:"omitempty,min=8,max=72"`
	PostID   *string `db:"post_id"  json:"post_id"  validate:"omitempty,uuid"`
}

func (u *UpdateEmployeeRequest) IsEmpty() bool {
	return u.Username == nil && u.Password == nil && u.PostID == nil
}

// Fields expects the new password already hashed.
func (u *UpdateEmployeeRequest) Fields(user, hashedPassword string) map[string]any {
	fields := shared.TransformFields(*u, user)
	if hashedPassword != "" {
		fields[model.FieldHashedPassword] = hashedPassword
	}

	return fields
}

// AssignPostRequest names the post either by id or by name, never both.
type AssignPostRequest struct {
	PostID   *string `json:"post_id"   validate:"omitempty,uuid"`
	PostName *string `json:"post_name" validate:"omitempty,min=1,max=50"`
}

func (a *AssignPostRequest) Validate() error {
	if (a.PostID == nil) == (a.PostName == nil) {
		return failure.BadRequestFromString("exactly one of post_id or post_name is required")
	}

	return nil
}

type PostSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type EmployeeResponse struct {
	ID       string       `json:"id"`
	Username string       `json:"username"`
	IsActive bool         `json:"is_active"`
	Post     *PostSummary `json:"post"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.Username = model.Username
	r.IsActive = model.IsActive
	r.Post = nil

	if model.PostID != nil {
		r.Post = &PostSummary{ID: *model.PostID, Permissions: []string(model.PostPermissions)}
		if model.PostName != nil {
			r.Post.Name = *model.PostName
		}

		if r.Post.Permissions == nil {
			r.Post.Permissions = []string{}
		}
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}
