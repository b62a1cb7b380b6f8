package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blogs-server/internal/errs"
)

func TestUnescapeParam(t *testing.T) {
	tests := []struct {
		name    string
		rawPath string
		value   string
		want    string
		wantErr bool
	}{
		{name: "plain path", value: "a@x.io", want: "a@x.io"},
		{name: "plain path keeps percent", value: "a%b@x.io", want: "a%b@x.io"},
		{name: "escaped at", rawPath: "/wishlist/a%40x.io", value: "a%40x.io", want: "a@x.io"},
		{name: "escaped plus", rawPath: "/wishlist/a%2Bb%40x.io", value: "a%2Bb%40x.io", want: "a+b@x.io"},
		{name: "bad escape", rawPath: "/wishlist/a%zz", value: "a%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/wishlist/x", nil)
			req.URL.RawPath = tt.rawPath
			c := echo.New().NewContext(req, httptest.NewRecorder())

			got, err := unescapeParam(c, "email", tt.value)
			if tt.wantErr {
				var httpErr *errs.HTTPError
				if !errors.As(err, &httpErr) || httpErr.Status != http.StatusBadRequest {
					t.Fatalf("error = %v, want 400", err)
				}
				if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "email" {
					t.Errorf("field errors = %+v", httpErr.Errors)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("unescapeParam = %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}
