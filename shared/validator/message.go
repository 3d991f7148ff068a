package validator

import (
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param}",
		"min":         "{field} must be greater than or equal to {param}",
		"email":       "{field} must be a valid email address",
		"latitude":    "{field} must be a valid latitude",
		"longitude":   "{field} must be a valid longitude",
		"mimetypes":   "{field} must be a file of type: {param}",
		"maxfilesize": "{field} must not be greater than {param} kilobytes",
	}
)

func message(valErr val.FieldError) string {
	field := strings.ToLower(valErr.Field())
	param := valErr.Param()

	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", field)
	errStr = strings.ReplaceAll(errStr, "{param}", param)

	return errStr
}
