package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"venue-booking-web/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.HTML(resp.Status, httperr.Template, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			resp := httperr.InternalError()
			c.HTML(resp.Status, httperr.Template, resp)
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", fmt.Sprint(err),
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)

				resp := httperr.InternalError()
				if !c.Writer.Written() {
					c.HTML(resp.Status, httperr.Template, resp)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
