package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/timezone"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// ConvertStringToSlice splits a comma separated query value, dropping blanks.
func ConvertStringToSlice(value string) []string {
	if value == "" {
		return nil
	}

	res := []string{}

	for part := range strings.SplitSeq(value, constant.Comma) {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}

	return res
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the set fields of a patch struct into a column map.
// Nil pointers and zero values are skipped, pointers are dereferenced and created_at is never emitted.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" || fieldName == constant.FieldCreatedAt {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByIDAndStatus matches one row by id only while its status column is one of the expected values.
func FilterByIDAndStatus[S ~string](id, fieldID, fieldStatus string, expected []S) dto.FilterGroup {
	values := make([]string, len(expected))
	for i, s := range expected {
		values[i] = string(s)
	}

	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: fieldID, Value: id, Operator: dto.FilterOperatorEq},
			dto.Filter{Field: fieldStatus, Value: values, Operator: dto.FilterOperatorIn},
		},
	}
}

// FilterByIDAndActive matches one row by id only while it is still active.
func FilterByIDAndActive(id, fieldID, fieldActive string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: fieldID, Value: id, Operator: dto.FilterOperatorEq},
			dto.Filter{Field: fieldActive, Value: true, Operator: dto.FilterOperatorEq},
		},
	}
}

// Username returns the acting user stored by the auth middleware, or the system actor.
func Username(ctx context.Context) string {
	if username, ok := ctx.Value(constant.ContextKeyUsername).(string); ok && username != "" {
		return username
	}

	return constant.ContextSystem
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// BuildCacheKeyWithQuery derives a stable key from paging and filter values.
func BuildCacheKeyWithQuery(prefix string, q dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	raw, err := json.Marshal(args)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal cache key args")
	}

	sum := sha256.Sum256(fmt.Appendf(nil, "%d|%d|%d|%s|%s|%s|%s",
		q.Page, q.Limit, q.GetOffset(), q.SortBy, q.SortDir, where, raw))

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:8]))
}

// InvalidateCaches removes every key under prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
