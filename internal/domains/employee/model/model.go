package model

import (
	postModel "hotel/internal/domains/post/model"
	"hotel/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID             = "id"
	FieldUsername       = "username"
	FieldHashedPassword = "hashed_password"
	FieldPostID         = "post_id"
	FieldIsActive       = "is_active"

	ConstraintUniqueUsername = "employees_username_key"
)

// Employee carries its post's name and permissions through a left join.
type Employee struct {
	ID              string         `db:"id"`
	Username        string         `db:"username"`
	HashedPassword  string         `db:"hashed_password"`
	PostID          *string        `db:"post_id"`
	IsActive        bool           `db:"is_active"`
	PostName        *string        `db:"post_name"        table:"posts" column:"name"`
	PostPermissions pq.StringArray `db:"post_permissions" table:"posts" column:"permissions"`
	model.Metadata
}

func (Employee) GetJoinQuery() string {
	return "LEFT JOIN " + postModel.TableName + " ON " + postModel.TableName + ".id = " + TableName + ".post_id"
}
