package handler

import (
	"reflect"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/blogs-server/internal/middleware"
	"github.com/deppfellow/blogs-server/internal/server"
	"github.com/deppfellow/blogs-server/internal/validation"
)

// Handler is the base handler type that holds shared application dependencies.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint that receives a bound and validated request.
// Req is a pointer type so Echo can bind into it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler writes a successful result and names the operation for logs.
type ResponseHandler interface {
	Handle(c echo.Context, result interface{}) error
	GetOperation() string
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// AddAttributes records the number of returned documents for list endpoints.
func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if result == nil {
		return
	}
	if v := reflect.ValueOf(result); v.Kind() == reflect.Slice {
		txn.AddAttribute("response.items", v.Len())
	}
}

// newRequest returns a zero value of the same pointer type as prototype, so
// concurrent requests never share a payload.
func newRequest[Req validation.Validatable](prototype Req) Req {
	t := reflect.TypeOf(prototype)
	if t == nil || t.Kind() != reflect.Pointer {
		return prototype
	}
	return reflect.New(t.Elem()).Interface().(Req)
}

// handleRequest binds and validates req, runs handler and writes the result.
// Each stage is timed into the request logger and the New Relic transaction.
// Errors are returned untouched for GlobalErrorHandler.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	attr := func(key string, value interface{}) {
		if txn != nil {
			txn.AddAttribute(key, value)
		}
	}
	attr("handler.name", route)

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	bindStart := time.Now()
	err := validation.BindAndValidate(c, req)
	bindTime := time.Since(bindStart)
	attr("validation.duration_ms", bindTime.Milliseconds())
	if err != nil {
		attr("validation.status", "failed")
		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
		}
		logger.Warn().Err(err).Dur("validation_duration", bindTime).Msg("request rejected")
		return err
	}
	attr("validation.status", "success")

	execStart := time.Now()
	result, err := handler(c, req)
	execTime := time.Since(execStart)
	attr("handler.duration_ms", execTime.Milliseconds())
	attr("total.duration_ms", time.Since(start).Milliseconds())
	if err != nil {
		attr("handler.status", "error")
		logger.Error().Err(err).Dur("handler_duration", execTime).Msg("handler failed")
		return err
	}
	attr("handler.status", "success")
	if txn != nil {
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("validation_duration", bindTime).
		Dur("handler_duration", execTime).
		Dur("total_duration", time.Since(start)).
		Msg("request handled")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler into an echo.HandlerFunc.
//
//	router.POST("/blog", handler.Handle(h.Handler, h.CreateBlog, http.StatusOK, &model.CreateBlogRequest{}))
//
// req only fixes the request type; each call binds into a fresh value.
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newRequest(req), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
