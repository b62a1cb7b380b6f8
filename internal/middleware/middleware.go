// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as bearer
// token verification, request ids, request logging, CORS, request deadlines,
// tracing and panic recovery.
package middleware
