package repository

import (
	"errors"
	"hotel/shared/constant"

	"github.com/lib/pq"
)

// IsUniqueViolation reports a unique constraint failure, optionally for a named constraint.
func IsUniqueViolation(err error, constraint ...string) bool {
	return hasCode(err, constant.PqErrorCodeUniqueViolation, constraint...)
}

// IsExclusionViolation reports an exclusion constraint failure such as overlapping date ranges.
func IsExclusionViolation(err error, constraint ...string) bool {
	return hasCode(err, constant.PqErrorCodeExclusionViolation, constraint...)
}

func IsForeignKeyViolation(err error) bool {
	return hasCode(err, constant.PqErrorCodeFkViolation)
}

// IsInvalidTextRepresentation reports a literal postgres could not parse, such as a malformed uuid.
func IsInvalidTextRepresentation(err error) bool {
	return hasCode(err, constant.PqErrorCodeInvalidTextRepresentation)
}

func hasCode(err error, code string, constraint ...string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != code {
		return false
	}

	if len(constraint) == 0 {
		return true
	}

	for _, name := range constraint {
		if pqErr.Constraint == name {
			return true
		}
	}

	return false
}
