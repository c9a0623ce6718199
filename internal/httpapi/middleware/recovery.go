package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/0xAnupam/Mental-Health-ChatBot/internal/common"
)

// Recovery converts panics into the generic error shape instead of gin's
// default plain-text 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered request_id=%s: %v", GetRequestID(c), r)
				common.FailServer(c, "internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
