package access

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer    ", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := BearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrUnauthorized) {
					t.Fatalf("BearerToken(%q) error = %v, want ErrUnauthorized", tt.header, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("BearerToken(%q) = %q, %v; want %q", tt.header, got, err, tt.want)
			}
		})
	}
}

func TestIdentityContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := IdentityFromContext(ctx); ok {
		t.Fatal("empty context should carry no identity")
	}

	ctx = WithIdentity(ctx, &Identity{Subject: "user_1"})
	id, ok := IdentityFromContext(ctx)
	if !ok || id.Subject != "user_1" {
		t.Fatalf("IdentityFromContext = %+v, %v", id, ok)
	}
}

func TestProfiles(t *testing.T) {
	open, err := ProfileByName(ProfileOpen)
	if err != nil {
		t.Fatal(err)
	}
	if open.ProtectsAny() {
		t.Errorf("open protects %v", open.Protected())
	}

	protected, err := ProfileByName("Protected")
	if err != nil {
		t.Fatal(err)
	}
	strict, err := ProfileByName(ProfileStrict)
	if err != nil {
		t.Fatal(err)
	}

	for _, r := range []Route{RouteCreateBlog, RouteUpdateBlog, RouteAddWishlist, RouteGetWishlist, RouteRemoveWishlist} {
		if !protected.Protects(r) || !strict.Protects(r) {
			t.Errorf("%s should be protected in protected and strict", r)
		}
	}
	for _, r := range []Route{RouteListBlogs, RouteGetBlog} {
		if protected.Protects(r) {
			t.Errorf("%s should be public in protected", r)
		}
		if !strict.Protects(r) {
			t.Errorf("%s should be protected in strict", r)
		}
	}
	for _, p := range []Policy{open, protected, strict} {
		for _, r := range []Route{RouteRoot, RouteListComments, RouteCreateComment} {
			if p.Protects(r) {
				t.Errorf("%s should be public in %s", r, p.Name())
			}
		}
	}

	if _, err := ProfileByName("admin"); err == nil {
		t.Error("unknown profile should fail")
	}
}

func TestWithProtected(t *testing.T) {
	base, _ := ProfileByName(ProfileOpen)

	p, err := base.WithProtected("post /comments", "", "GET /allBlogs")
	if err != nil {
		t.Fatalf("WithProtected error = %v", err)
	}
	if !p.Protects(RouteCreateComment) || !p.Protects(RouteListBlogs) {
		t.Errorf("protected = %v", p.Protected())
	}
	if base.ProtectsAny() {
		t.Error("WithProtected mutated the base policy")
	}

	if _, err := base.WithProtected("GET /admin"); err == nil {
		t.Error("unknown route should fail")
	}
	if _, err := base.WithProtected("/allBlogs"); err == nil {
		t.Error("entry without method should fail")
	}
}

func TestParseRoute(t *testing.T) {
	r, err := ParseRoute("delete /wishlist/:id")
	if err != nil || r != (Route{http.MethodDelete, "/wishlist/:id"}) {
		t.Fatalf("ParseRoute = %v, %v", r, err)
	}
}
