package model

import (
	"hotel/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "posts"
	EntityName = "post"

	FieldID          = "id"
	FieldName        = "name"
	FieldPermissions = "permissions"

	ConstraintUniqueName = "posts_name_key"
)

// Post is a job role. Its permissions are capability tags from the permissions catalogue.
type Post struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Permissions pq.StringArray `db:"permissions"`
	model.Metadata
}
