package errs

import (
	"net/http"
)

// UnauthorizedMessage is the body message for every rejected credential.
const UnauthorizedMessage = "unauthorized access"

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     CodeUnauthorized,
		Message:  message,
		Status:   http.StatusUnauthorized,
		Override: override,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code is optional; nil falls back to "BAD_REQUEST".
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewInternalServerError creates a generic 500. The real cause is logged, never returned.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewStoreUnavailableError reports that the document store could not be reached in time.
func NewStoreUnavailableError() *HTTPError {
	return &HTTPError{
		Code:     CodeStoreUnavailable,
		Message:  "The data store is temporarily unavailable",
		Status:   http.StatusInternalServerError,
		Override: true,
	}
}

// NewInvalidIDError reports a path or body value that is not a valid store identifier.
func NewInvalidIDError(field, value string) *HTTPError {
	code := CodeInvalidID
	return NewBadRequestError("Invalid "+field+": "+value, true, &code, []FieldError{
		{Field: field, Error: "must be a valid id"},
	})
}

// NewMissingFieldsError reports required body fields that were absent.
func NewMissingFieldsError(fields ...FieldError) *HTTPError {
	code := CodeMissingFields
	return NewBadRequestError("Missing required fields", true, &code, fields)
}

// NewDuplicateWishlistItemError reports an existing (blogId, userEmail) wishlist entry.
func NewDuplicateWishlistItemError() *HTTPError {
	code := CodeDuplicateWishlistItem
	return NewBadRequestError("This blog is already in your wishlist", true, &code, nil)
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil)
}
