package validator

import (
	"encoding/json"
	"fmt"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const moneyScale = 2

var validate *val.Validate

func registerMimetypeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	contentType := file.Header.Get(constant.RequestHeaderContentType)

	return slices.Contains(strings.Split(field.Param(), " "), contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0

	return file.Size <= int64(maxSizeMB*bytesConversion*bytesConversion)
}

// registerMoneyValidation accepts non-negative amounts with at most two fractional digits.
func registerMoneyValidation(field val.FieldLevel) bool {
	amount, err := decimal.NewFromString(field.Field().String())
	if err != nil {
		return false
	}

	return !amount.IsNegative() && amount.Equal(amount.Truncate(moneyScale))
}

func registerPermissionValidation(field val.FieldLevel) bool {
	return permissions.IsKnown(field.Field().String())
}

func decimalTypeFunc(field reflect.Value) any {
	if amount, ok := field.Interface().(decimal.Decimal); ok {
		return amount.String()
	}

	return nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterCustomTypeFunc(decimalTypeFunc, decimal.Decimal{})

	validations := map[string]val.Func{
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
		"money":       registerMoneyValidation,
		"permission":  registerPermissionValidation,
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
}

// Validate decodes JSON from r into data and validates the result.
// Unknown fields are rejected so a typo in a patch is not silently ignored.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
