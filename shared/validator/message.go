package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":         "{field} is required",
		"gte":              "{field} must be greater than or equal to {param}",
		"lte":              "{field} must be less than or equal to {param}",
		"gt":               "{field} must be greater than {param}",
		"oneof":            "{field} must be one of {param}",
		"max":              "{field} must be less than or equal to {param}",
		"min":              "{field} must be greater than or equal to {param}",
		"email":            "{field} must be a valid email address",
		"datetime":         "{field} must be a date formatted as {param}",
		"uuid":             "{field} must be a valid UUID",
		"money":            "{field} must be a non-negative amount with at most two decimal places",
		"permission":       "{field} must be a known permission",
		"mimetypes":        "{field} must be one of {param}",
		"maxfilesize":      "{field} must not exceed {param} MB",
		"excluded_with":    "{field} cannot be combined with {param}",
		"required_without": "{field} is required when {param} is absent",
		"unique":           "{field} must not contain duplicates",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := ""
			field := valErr.Field()
			param := valErr.Param()

			errStr = messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
