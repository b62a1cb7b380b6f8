package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogs-server/internal/errs"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,email"`)
//   - Implement Validate() error that runs validator.Struct(req)
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds path params and the JSON body into payload and validates it.
//
// Binding failures (malformed JSON, unknown fields, wrong types) become a 400
// with the decoder message. Validation failures become a 400 with every field
// error listed; if any required field is missing the code is MISSING_FIELDS.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if msg, code, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, code, fieldErrors)
	}

	return nil
}

func bindError(err error) error {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusUnsupportedMediaType {
			return errs.NewBadRequestError("Request body must be application/json", true, nil, nil)
		}
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return errs.NewBadRequestError(msg, false, nil, nil)
		}
	}
	return errs.NewBadRequestError("Invalid request body", false, nil, nil)
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, *string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil, nil
}

func extractValidationError(err error) (string, *string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, e := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return "Validation failed", nil, fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error at all; surface it as a single generic failure.
		return "Validation failed", nil, []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	missing := false
	for _, fe := range validationErrors {
		missing = missing || fe.Tag() == "required"
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: jsonFieldName(fe),
			Error: fieldMessage(fe),
		})
	}

	if missing {
		code := errs.CodeMissingFields
		return "Missing required fields", &code, fieldErrors
	}
	return "Validation failed", nil, fieldErrors
}

// fieldMessage renders one validator failure for clients.
func fieldMessage(fe validator.FieldError) string {
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s%s", fe.Param(), unit)
	case "max":
		return fmt.Sprintf("must not exceed %s%s", fe.Param(), unit)
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "dive":
		return "some items are invalid"
	}

	if fe.Param() != "" {
		return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	}
	return "failed " + fe.Tag()
}

// jsonFieldName maps a struct field name to the camelCase key clients send:
// "BlogID" -> "blogId", "UserEmail" -> "userEmail".
func jsonFieldName(err validator.FieldError) string {
	name := err.Field()
	switch {
	case name == "":
		return name
	case strings.HasSuffix(name, "ID"):
		name = strings.TrimSuffix(name, "ID") + "Id"
	}
	if name == "Id" {
		return "id"
	}
	return strings.ToLower(name[:1]) + name[1:]
}
