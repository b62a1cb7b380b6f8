// Package handler is the HTTP layer, the first entry point after the router.
//
// It binds path parameters and JSON bodies into typed requests, validates
// them through the validation package, and calls the service layer.
package handler
