package dto_test

import (
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/model"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: createdAt.Add(time.Hour),
		CreatedBy:  "reception",
		ModifiedBy: "manager",
	})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEmpty(t, metadata.ModifiedAt)
	assert.Equal(t, "reception", metadata.CreatedBy)
	assert.Equal(t, "manager", metadata.ModifiedBy)
}

func TestMetadata_FromModelUnmodified(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: createdAt,
		CreatedBy:  "reception",
		ModifiedBy: "reception",
	})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.Empty(t, metadata.ModifiedAt)
	assert.Empty(t, metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		rawQuery       string
		defaultRequest bool
		wantPage       int
		wantLimit      int
		wantOffset     int
		wantSortDir    string
		wantErr        error
	}{
		{
			name:           "all parameters",
			rawQuery:       "page=2&limit=5&sort_by=date_in&sort_dir=asc",
			defaultRequest: true,
			wantPage:       2,
			wantLimit:      5,
			wantOffset:     5,
			wantSortDir:    dto.SortDirAsc,
		},
		{
			name:           "defaults",
			rawQuery:       "",
			defaultRequest: true,
			wantPage:       constant.DefaultValuePage,
			wantLimit:      constant.DefaultValueLimit,
		},
		{
			name:           "explicit offset wins over page",
			rawQuery:       "page=3&limit=10&offset=7",
			defaultRequest: true,
			wantPage:       3,
			wantLimit:      10,
			wantOffset:     7,
		},
		{
			name:           "limit above maximum",
			rawQuery:       "limit=11",
			defaultRequest: true,
			wantPage:       constant.DefaultValuePage,
			wantLimit:      11,
			wantErr:        failure.LimitExceeded,
		},
		{
			name:           "invalid limit",
			rawQuery:       "limit=abc",
			defaultRequest: true,
			wantPage:       constant.DefaultValuePage,
			wantLimit:      constant.DefaultValueLimit,
			wantErr:        failure.InvalidLimitParam,
		},
		{
			name:           "negative page",
			rawQuery:       "page=-1",
			defaultRequest: false,
			wantErr:        failure.InvalidPageParam,
		},
		{
			name:           "negative offset",
			rawQuery:       "offset=-4",
			defaultRequest: false,
			wantErr:        failure.InvalidOffsetParam,
		},
		{
			name:           "unknown sort direction ignored",
			rawQuery:       "sort_dir=sideways",
			defaultRequest: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/bookings?"+tt.rawQuery, nil)

			q := dto.QueryParams{}
			q.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantLimit, q.Limit)
			assert.Equal(t, tt.wantSortDir, q.SortDir)

			err := q.Validate(constant.MaxValueLimit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantOffset, q.GetOffset())
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "status", Value: []string{"active"}, Operator: dto.FilterOperatorIn},
			dto.Filter{ArgName: "new_date_out", Field: "date_in", Value: "2024-01-05", Operator: dto.FilterOperatorLess},
			dto.Filter{ArgName: "new_date_in", Field: "date_out", Value: "2024-01-01", Operator: dto.FilterOperatorGreater},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_id = :room_id AND status IN (:status_0) AND date_in < :new_date_out AND date_out > :new_date_in)", where)
	assert.Equal(t, map[string]any{
		"room_id":      "r1",
		"status_0":     "active",
		"new_date_out": "2024-01-05",
		"new_date_in":  "2024-01-01",
	}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "like escapes wildcards",
			filter:    dto.Filter{Field: "type_room", Value: "50%_off", Operator: dto.FilterOperatorLike, Table: "rooms"},
			wantWhere: "LOWER(rooms.type_room) LIKE LOWER(:type_room)",
			wantArgs:  map[string]any{"type_room": `%50\%\_off%`},
		},
		{
			name:      "in with a single value is bound",
			filter:    dto.Filter{Field: "status", Value: "active", Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status)",
			wantArgs:  map[string]any{"status": "active"},
		},
		{
			name:      "in with an empty set",
			filter:    dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "greater or equal",
			filter:    dto.Filter{Field: "max_guests", Value: 3, Operator: dto.FilterOperatorGreaterEq, Table: "rooms"},
			wantWhere: "rooms.max_guests >= :max_guests",
			wantArgs:  map[string]any{"max_guests": 3},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "photo_url", Operator: dto.FilterIsNull},
			wantWhere: "photo_url IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
