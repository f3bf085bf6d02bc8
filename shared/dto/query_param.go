package dto

import (
	"hotel/shared/constant"
	"hotel/shared/failure"
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	Offset  int    `json:"offset"   validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`

	invalid error
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, Page and Limit fall back to the package defaults when absent.
// Malformed values are remembered and reported by Validate.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		pageInt, err := strconv.Atoi(page)
		if err != nil || pageInt <= 0 {
			q.invalid = failure.InvalidPageParam
		} else {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt <= 0 {
			q.invalid = failure.InvalidLimitParam
		} else {
			q.Limit = limitInt
		}
	}

	if offset := queryParams.Get(constant.RequestParamOffset); offset != "" {
		offsetInt, err := strconv.Atoi(offset)
		if err != nil || offsetInt < 0 {
			q.invalid = failure.InvalidOffsetParam
		} else {
			q.Offset = offsetInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := queryParams.Get(constant.RequestParamSortDir); strings.ToUpper(sortDir) == SortDirAsc || strings.ToUpper(sortDir) == SortDirDesc {
		q.SortDir = strings.ToUpper(sortDir)
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Validate rejects malformed paging values and a limit above maxLimit.
// It must run before any query is issued.
func (q *QueryParams) Validate(maxLimit int) error {
	if q.invalid != nil {
		return q.invalid
	}

	if maxLimit <= 0 {
		maxLimit = constant.MaxValueLimit
	}

	if q.Limit > maxLimit {
		return failure.LimitExceeded
	}

	return nil
}

// GetOffset prefers an explicit offset and otherwise derives it from the page.
func (q *QueryParams) GetOffset() int {
	if q.Offset > 0 {
		return q.Offset
	}

	if q.Page > 1 {
		return (q.Page - 1) * q.Limit
	}

	return 0
}
