package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	statusCode int

	Msg string `json:"msg"`
}

func (e *Err) Error() string {
	return e.Msg
}

// RenderErr writes the error body and aborts the request. Internal
// details of 5xx errors go to the log, not to the client.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.statusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Int("status", err.statusCode), zap.String("msg", err.Msg))
		err.Msg = "internal server error"
	}

	if err.statusCode == http.StatusUnauthorized {
		ctx.Header("WWW-Authenticate", "Bearer")
	}

	ctx.AbortWithStatusJSON(err.statusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		statusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		Msg:        err.Error(),
	}
}

// ErrWrongCredentials renders a single message for both unknown-user and
// wrong-password so the endpoint cannot be used for user enumeration.
func ErrWrongCredentials() *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		Msg:        "incorrect username or password",
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		statusCode: http.StatusForbidden,
		Msg:        err.Error(),
	}
}

func ErrNotFound(what, key string, value interface{}) *Err {
	return &Err{
		statusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v with %v %v not found", what, key, value),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		statusCode: http.StatusConflict,
		Msg:        err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		statusCode: http.StatusInternalServerError,
		Msg:        err.Error(),
	}
}
