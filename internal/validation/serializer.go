package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// StrictJSONSerializer is echo's JSON serializer with unknown fields rejected
// and trailing data after the first JSON value refused.
type StrictJSONSerializer struct{}

// Serialize writes i as JSON, indented when indent is non-empty.
func (StrictJSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

// Deserialize decodes the request body into i.
func (StrictJSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(i)
	if err == nil {
		if dec.More() {
			return echo.NewHTTPError(http.StatusBadRequest, "Request body must contain a single JSON object")
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Field %q must be of type %v", typeErr.Field, typeErr.Type)).SetInternal(err)
	case errors.As(err, &syntaxErr):
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Malformed JSON at offset %d", syntaxErr.Offset)).SetInternal(err)
	case errors.Is(err, io.EOF):
		return echo.NewHTTPError(http.StatusBadRequest, "Request body is empty").SetInternal(err)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed JSON: unexpected end of body").SetInternal(err)
	default:
		// json reports unknown fields as `json: unknown field "x"`.
		return echo.NewHTTPError(http.StatusBadRequest, strings.TrimPrefix(err.Error(), "json: ")).SetInternal(err)
	}
}
