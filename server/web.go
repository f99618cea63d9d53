package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/etnz/finpredictor"
	"github.com/etnz/finpredictor/store"
	"github.com/gin-gonic/gin"
)

// A handler handles a request and returns the error to answer, if any.
type handler func(c *gin.Context) error

// requestError is an error answered with a specific status.
type requestError struct {
	err    error
	status int
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

// newRequestError wraps err with the status to answer.
func newRequestError(err error, status int) error {
	return &requestError{err: err, status: status}
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Detail string `json:"detail"`
}

// status returns the HTTP status of err.
func status(err error) int {
	var rerr *requestError
	switch {
	case errors.As(err, &rerr):
		return rerr.status
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrEmailTaken), errors.Is(err, finpredictor.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, finpredictor.ErrDomain):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// handle adapts h to gin, answering its error with the {"detail": ...} envelope.
func handle(h handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}
		code := status(err)
		detail := err.Error()
		if code == http.StatusInternalServerError {
			log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			detail = http.StatusText(code)
		}
		c.AbortWithStatusJSON(code, errorResponse{Detail: detail})
	}
}

// bind decodes the JSON body into v, a 400 when it is invalid.
func bind(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return newRequestError(err, http.StatusBadRequest)
	}
	return nil
}
