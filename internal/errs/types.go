package errs

import "strings"

// Machine-readable codes for the blog API error taxonomy.
const (
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeInvalidID             = "INVALID_ID"
	CodeMissingFields         = "MISSING_FIELDS"
	CodeDuplicateWishlistItem = "WISHLIST_ITEM_ALREADY_EXISTS"
	CodeStoreUnavailable      = "STORE_UNAVAILABLE"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "username", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the custom error type for API responses.
//
// It implements the `error` interface and is serialized directly to JSON.
//   - Code: machine-friendly error code (e.g. "INVALID_ID").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the message is safe to show to end users as-is.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, target) match any *HTTPError with the same Code.
// A target with an empty Code matches every *HTTPError.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
