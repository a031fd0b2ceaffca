package httperr

import (
	"github.com/gin-gonic/gin"
)

type payload struct {
	Message string `json:"message"`
}

// Response is the error envelope every handler returns. Status is kept out
// of the body; the middleware reads it from the struct when replaying.
type Response struct {
	Status int     `json:"-"`
	Error  payload `json:"error"`
	Detail any     `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError records the underlying error on the context for the logging
// middleware and writes the public envelope. The original error never reaches
// the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
