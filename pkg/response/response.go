package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/futsalero/pkg/errorx"
)

// Response is the JSON envelope for every endpoint.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

const codeOK = "ok"

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: codeOK, Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Code: codeOK, Data: data})
}

func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{Code: string(errorx.BadRequest), Message: msg})
}

func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Response{Code: "rate_limited", Message: "too many requests"})
}

// Error renders err with its kind; internal details never leave the process.
func Error(c *gin.Context, err error) {
	kind := errorx.KindOf(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(Status(kind), Response{Code: string(kind), Message: errorx.Public(err)})
}

// Status maps an error kind to its HTTP status.
func Status(kind errorx.Kind) int {
	switch kind {
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.IdentityExhausted, errorx.StorageFailure:
		return http.StatusInternalServerError
	case "":
		return http.StatusOK
	default:
		return http.StatusBadRequest
	}
}
