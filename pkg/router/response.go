package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homequest/backend/pkg/errorx"
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{Code: 0, Data: data}
}

func newBadBindError(err error) error {
	return errorx.New(errorx.BadRequest, "Cannot parse the request: %v", err)
}

// writeError maps coded errors to the response envelope. Unexpected errors
// collapse into errorx.Unknown so internals never leak to the client.
func writeError(ginCtx *gin.Context, err error) {
	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	ginCtx.JSON(http.StatusOK, response{
		Code:  int64(errx.Code),
		Error: errx.Message,
	})
}
