package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the uniform error payload. StatusCode picks the HTTP status and the
// wire body is just {"error": "..."}; internal detail stays server-side.
type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`

	cause error
}

func (e *Err) Error() string {
	return e.Message
}

// RenderErr writes the error response and aborts the handler chain. Causes
// of 5xx responses are logged, never serialized.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError && err.cause != nil {
		zap.L().Error("request failed",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err.cause),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
}

func ErrNotAuthenticated() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    "not authenticated",
	}
}

func ErrInvalidToken() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    "invalid or expired token",
	}
}

func ErrWrongCredentials() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    "invalid credentials",
	}
}

func ErrPermissionDenied() *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Message:    "not authorized",
	}
}

func ErrNotFound(err error) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Message:    err.Error(),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Message:    err.Error(),
	}
}

func ErrTooManyRequests() *Err {
	return &Err{
		StatusCode: http.StatusTooManyRequests,
		Message:    "too many login attempts, please try again later",
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal server error",
		cause:      err,
	}
}
