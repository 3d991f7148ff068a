package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"slices"
	"strconv"
	"strings"

	"deskhub/shared/base64"
	"deskhub/shared/constant"
	"deskhub/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	if file, ok := field.Field().Interface().(multipart.FileHeader); ok {
		contentType = file.Header.Get(constant.RequestHeaderContentType)
	} else if str, ok := field.Field().Interface().(string); ok {
		contentType = base64.GetContentType(str)

		if contentType == "" {
			return false
		}
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

// registerFileSizeValidation enforces an upper bound on file size. The tag
// parameter is in kilobytes, e.g. `maxfilesize=5000`.
func registerFileSizeValidation(field val.FieldLevel) bool {
	fileSize := 0
	if file, ok := field.Field().Interface().(multipart.FileHeader); ok {
		fileSize = int(file.Size)
	} else if str, ok := field.Field().Interface().(string); ok {
		fileSize = len(str)
	}

	maxSizeKB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	maxSizeBytes := int(maxSizeKB * 1024.0)

	return fileSize <= maxSizeBytes
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then
// performs validation on the struct using the validator package.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct validates the struct and maps each failing field to a
// human readable message, returned as an unprocessable entity failure.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	fields := map[string]string{}
	for _, valErr := range valErrors {
		field := strings.ToLower(valErr.Field())
		if _, ok := fields[field]; !ok {
			fields[field] = message(valErr)
		}
	}

	return failure.ValidationFields(fields) //nolint:wrapcheck
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)
	if err == nil {
		return nil
	}

	var valErrors val.ValidationErrors
	if errors.As(err, &valErrors) && len(valErrors) > 0 {
		return failure.BadRequestFromString(message(valErrors[0])) //nolint:wrapcheck
	}

	return failure.BadRequest(err) //nolint:wrapcheck
}
