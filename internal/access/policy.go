package access

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Profile names accepted in config.
const (
	ProfileOpen      = "open"
	ProfileProtected = "protected"
	ProfileStrict    = "strict"
)

// Route identifies an endpoint by method and echo path template.
type Route struct {
	Method string
	Path   string
}

func (r Route) String() string {
	return r.Method + " " + r.Path
}

// Routes served by the blog API.
var (
	RouteRoot           = Route{http.MethodGet, "/"}
	RouteListBlogs      = Route{http.MethodGet, "/allBlogs"}
	RouteGetBlog        = Route{http.MethodGet, "/allBlogs/:id"}
	RouteCreateBlog     = Route{http.MethodPost, "/blog"}
	RouteUpdateBlog     = Route{http.MethodPut, "/blogs/:id"}
	RouteListComments   = Route{http.MethodGet, "/comments/:blogId"}
	RouteCreateComment  = Route{http.MethodPost, "/comments"}
	RouteAddWishlist    = Route{http.MethodPost, "/wishlist"}
	RouteGetWishlist    = Route{http.MethodGet, "/wishlist/:email"}
	RouteRemoveWishlist = Route{http.MethodDelete, "/wishlist/:id"}
)

// KnownRoutes lists every route a Policy may protect.
var KnownRoutes = []Route{
	RouteRoot,
	RouteListBlogs,
	RouteGetBlog,
	RouteCreateBlog,
	RouteUpdateBlog,
	RouteListComments,
	RouteCreateComment,
	RouteAddWishlist,
	RouteGetWishlist,
	RouteRemoveWishlist,
}

// Policy is a named, immutable set of protected routes.
type Policy struct {
	name      string
	protected map[Route]bool
}

// NewPolicy builds a policy protecting exactly the given routes.
func NewPolicy(name string, protected ...Route) Policy {
	p := Policy{name: name, protected: make(map[Route]bool, len(protected))}
	for _, r := range protected {
		p.protected[r] = true
	}
	return p
}

// Name returns the profile name the policy was built from.
func (p Policy) Name() string {
	return p.name
}

// Protects reports whether r requires a verified identity.
func (p Policy) Protects(r Route) bool {
	return p.protected[r]
}

// ProtectsAny reports whether at least one route is protected.
func (p Policy) ProtectsAny() bool {
	return len(p.protected) > 0
}

// Protected returns the protected routes in a stable order.
func (p Policy) Protected() []Route {
	routes := make([]Route, 0, len(p.protected))
	for r := range p.protected {
		routes = append(routes, r)
	}
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].String() < routes[j].String()
	})
	return routes
}

// WithProtected returns a copy of p that also protects the given "METHOD /path" entries.
func (p Policy) WithProtected(entries ...string) (Policy, error) {
	next := NewPolicy(p.name, p.Protected()...)
	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		r, err := ParseRoute(entry)
		if err != nil {
			return Policy{}, err
		}
		next.protected[r] = true
	}
	return next, nil
}

// ParseRoute parses "METHOD /path" and checks it names a known route.
func ParseRoute(entry string) (Route, error) {
	method, path, found := strings.Cut(strings.TrimSpace(entry), " ")
	if !found {
		return Route{}, fmt.Errorf("invalid route %q: want \"METHOD /path\"", entry)
	}
	r := Route{Method: strings.ToUpper(method), Path: strings.TrimSpace(path)}
	for _, known := range KnownRoutes {
		if known == r {
			return r, nil
		}
	}
	return Route{}, fmt.Errorf("unknown route %q", entry)
}

// ProfileByName returns one of the built-in profiles.
//
//   - open: every route is public.
//   - protected: blog writes and all wishlist routes need a token.
//   - strict: protected plus blog reads.
//
// Comment routes and the root liveness route are public in every profile.
func ProfileByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ProfileOpen:
		return NewPolicy(ProfileOpen), nil
	case ProfileProtected:
		return NewPolicy(ProfileProtected, protectedRoutes()...), nil
	case ProfileStrict:
		return NewPolicy(ProfileStrict, append(protectedRoutes(), RouteListBlogs, RouteGetBlog)...), nil
	default:
		return Policy{}, fmt.Errorf("unknown access profile %q (must be one of: %s, %s, %s)",
			name, ProfileOpen, ProfileProtected, ProfileStrict)
	}
}

func protectedRoutes() []Route {
	return []Route{
		RouteCreateBlog,
		RouteUpdateBlog,
		RouteAddWishlist,
		RouteGetWishlist,
		RouteRemoveWishlist,
	}
}
