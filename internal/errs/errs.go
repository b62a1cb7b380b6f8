// Package errs defines the error shape every API response uses.
//
// Handlers and services return *HTTPError values (or plain errors that the
// global error handler converts), so clients always receive the same JSON
// structure: code, message, status and optional field errors.
package errs
