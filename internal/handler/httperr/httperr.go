package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Messages returned in the error envelope.
const (
	MsgInvalidRequest = "Invalid request format"
	MsgInvalidOrderID = "Invalid order ID format"
	MsgOrderNotFound  = "Order not found"
	MsgDeviceNotFound = "Device not found"
	MsgInternal       = "Internal server error"
)

// Response is the {"error":{"message":...}} envelope shared by every failing endpoint.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError records err on the context for the logging middleware and writes the envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// BadRequest echoes the binding or validation error text as detail.
func BadRequest(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, MsgInvalidRequest, err.Error())
}

func NotFound(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusNotFound, err, msg, nil)
}

func Internal(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, MsgInternal, nil)
}
