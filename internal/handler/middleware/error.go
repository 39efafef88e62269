package middleware

import (
	"log/slog"
	"net/http"

	"rental-marketplace/internal/handler/httperr"
	"rental-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error a handler attached. Handlers
// that wrote nothing and set no status get a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors.ByType(gin.ErrorTypePrivate) {
			slog.Warn("unhandled request error",
				"request_id", GetRequestID(c),
				"route", c.FullPath(),
				"error", e.Err.Error())
		}

		if c.Writer.Written() {
			return
		}

		public := c.Errors.ByType(gin.ErrorTypePublic)
		if n := len(public); n > 0 {
			if resp, ok := public[n-1].Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

// CustomRecovery turns a panic into a logged 500 with a stack trace
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := errs.Newf("panic: %v", r)
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"error", err.Error(),
					"stack", errs.ExtractStackLines(err, 20))

				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}
