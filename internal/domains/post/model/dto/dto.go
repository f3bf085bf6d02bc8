package dto

import (
	"hotel/internal/domains/post/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreatePostRequest struct {
	Name        string   `json:"name"        validate:"required,max=50"`
	Permissions []string `json:"permissions" validate:"omitempty,unique,dive,permission"`
}

func (c *CreatePostRequest) ToModel(user string) model.Post {
	now := timezone.Now()

	permissions := pq.StringArray{}
	if c.Permissions != nil {
		permissions = pq.StringArray(c.Permissions)
	}

	return model.Post{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Permissions: permissions,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdatePostRequest is a partial patch. Permissions, when present, replace the whole set.
type UpdatePostRequest struct {
	Name        *string   `db:"name" json:"name"        validate:"omitempty,min=1,max=50"`
	Permissions *[]string `db:"-"    json:"permissions" validate:"omitempty,unique,dive,permission"`
}

func (u *UpdatePostRequest) Fields(user string) map[string]any {
	fields := shared.TransformFields(*u, user)
	if u.Permissions != nil {
		fields[model.FieldPermissions] = pq.StringArray(*u.Permissions)
	}

	return fields
}

func (u *UpdatePostRequest) IsEmpty() bool {
	return u.Name == nil && u.Permissions == nil
}

type PostResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	gDto.Metadata
}

func (r *PostResponse) FromModel(model model.Post) {
	r.ID = model.ID
	r.Name = model.Name
	r.Permissions = []string(model.Permissions)
	if r.Permissions == nil {
		r.Permissions = []string{}
	}
	r.Metadata.FromModel(model.Metadata)
}

type GetPostsResponse struct {
	Posts     []PostResponse `json:"posts"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetPostsResponse) FromModels(models []model.Post, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Posts = make([]PostResponse, len(models))
	for i, mod := range models {
		r.Posts[i].FromModel(mod)
	}
}
