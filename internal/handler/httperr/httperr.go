package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Template is the page every Response is rendered with.
const Template = "error"

type Response struct {
	Status  int
	Message string
	Detail  any
}

func (r Response) StatusText() string {
	return http.StatusText(r.Status)
}

// preserves original error for the request log
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.HTML(status, Template, resp)
	c.Abort()
}

func InternalError() Response {
	return Response{Status: http.StatusInternalServerError, Message: "Something went wrong. Please try again."}
}
