package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogs-server/internal/errs"
	"github.com/deppfellow/blogs-server/internal/model"
)

func newContext(method, body, contentType string) echo.Context {
	e := echo.New()
	e.JSONSerializer = StrictJSONSerializer{}

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %v, want *errs.HTTPError", err)
	}
	return httpErr
}

func TestBindAndValidateMissingFields(t *testing.T) {
	c := newContext(http.MethodPost, `{"comment":"hi"}`, echo.MIMEApplicationJSON)

	httpErr := asHTTPError(t, BindAndValidate(c, &model.CreateCommentRequest{}))
	if httpErr.Code != errs.CodeMissingFields || httpErr.Status != http.StatusBadRequest {
		t.Fatalf("got %s %d", httpErr.Code, httpErr.Status)
	}

	fields := map[string]bool{}
	for _, fe := range httpErr.Errors {
		fields[fe.Field] = true
	}
	if !fields["blogId"] || !fields["username"] || len(fields) != 2 {
		t.Errorf("fields = %v, want blogId and username", fields)
	}
}

func TestBindAndValidateMixedFailures(t *testing.T) {
	c := newContext(http.MethodPost, `{"blogId":"b","username":"u","comment":"c","email":"nope"}`, echo.MIMEApplicationJSON)

	httpErr := asHTTPError(t, BindAndValidate(c, &model.CreateCommentRequest{}))
	if httpErr.Code != "BAD_REQUEST" {
		t.Fatalf("code = %s, want BAD_REQUEST", httpErr.Code)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "email" || httpErr.Errors[0].Error != "must be a valid email address" {
		t.Errorf("errors = %+v", httpErr.Errors)
	}
}

func TestBindAndValidateMissingWithInvalid(t *testing.T) {
	c := newContext(http.MethodPost, `{"username":"ann","comment":"hi","email":"x"}`, echo.MIMEApplicationJSON)

	httpErr := asHTTPError(t, BindAndValidate(c, &model.CreateCommentRequest{}))
	if httpErr.Code != errs.CodeMissingFields {
		t.Fatalf("code = %s, want %s", httpErr.Code, errs.CodeMissingFields)
	}

	got := map[string]string{}
	for _, fe := range httpErr.Errors {
		got[fe.Field] = fe.Error
	}
	if got["blogId"] != "is required" || got["email"] != "must be a valid email address" || len(got) != 2 {
		t.Errorf("errors = %v, want blogId and email", got)
	}
}

func TestBindAndValidateBodyErrors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		wantMessage string
	}{
		{name: "unknown field", body: `{"title":"x","admin":true}`, contentType: echo.MIMEApplicationJSON, wantMessage: `unknown field "admin"`},
		{name: "wrong type", body: `{"title":1}`, contentType: echo.MIMEApplicationJSON, wantMessage: `Field "title" must be of type string`},
		{name: "truncated", body: `{"title":"x"`, contentType: echo.MIMEApplicationJSON, wantMessage: "unexpected end of body"},
		{name: "two values", body: `{"title":"x"} {"title":"y"}`, contentType: echo.MIMEApplicationJSON, wantMessage: "single JSON object"},
		{name: "not json", body: `title=x`, contentType: echo.MIMETextPlain, wantMessage: "must be application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext(http.MethodPost, tt.body, tt.contentType)
			httpErr := asHTTPError(t, BindAndValidate(c, &model.CreateBlogRequest{}))
			if httpErr.Status != http.StatusBadRequest {
				t.Errorf("status = %d", httpErr.Status)
			}
			if !strings.Contains(httpErr.Message, tt.wantMessage) {
				t.Errorf("message = %q, want it to contain %q", httpErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestBindAndValidateOK(t *testing.T) {
	c := newContext(http.MethodPost, `{"blogId":"b1","userEmail":"a@x.io","title":"T"}`, echo.MIMEApplicationJSON)

	req := &model.AddWishlistItemRequest{}
	if err := BindAndValidate(c, req); err != nil {
		t.Fatalf("BindAndValidate error = %v", err)
	}
	if req.BlogID != "b1" || req.UserEmail != "a@x.io" || req.Title != "T" {
		t.Errorf("req = %+v", req)
	}
}

func TestBindPathParam(t *testing.T) {
	c := newContext(http.MethodGet, "", "")
	c.SetParamNames("blogId")
	c.SetParamValues("65f0c0ffee0000000000abcd")

	req := &model.ListCommentsRequest{}
	if err := BindAndValidate(c, req); err != nil {
		t.Fatalf("BindAndValidate error = %v", err)
	}
	if req.BlogID != "65f0c0ffee0000000000abcd" {
		t.Errorf("BlogID = %q", req.BlogID)
	}
}
