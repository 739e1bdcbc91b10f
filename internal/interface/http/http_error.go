package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/sunside/pkg/errors"
)

// Error codes rendered in the response envelope.
const (
	codeInvalidRequest    = "invalid_request"
	codeInternal          = "internal_error"
	codeRateLimitExceeded = "rate_limit_exceeded"

	internalMessage = "something went wrong"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the domain cause for logging.
func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func invalidRequest(message string, err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, codeInvalidRequest, message, err)
}

func internalError(err error) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, codeInternal, internalMessage, err)
}

func rateLimited() *HTTPError {
	return NewHTTPError(http.StatusTooManyRequests, codeRateLimitExceeded, "too many requests", nil)
}

// fromDomain maps seat advisor and image lookup failures onto the envelope. Only
// invalid input carries its message to the client.
func fromDomain(err error) *HTTPError {
	if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		return invalidRequest(apperrors.MessageOf(err), err)
	}
	return internalError(err)
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return internalError(err)
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func errorBody(code, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}
