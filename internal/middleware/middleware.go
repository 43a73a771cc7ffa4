package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"prompt-relay-api/internal/models"
	"prompt-relay-api/pkg/lambda"
)

// Recovery converts a panic into a 500 response carrying the standard header set
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      fmt.Sprint(recovered),
		}).Error("Panic recovered")

		for key, value := range lambda.CORSHeaders() {
			c.Header(key, value)
		}
		c.Data(http.StatusInternalServerError, lambda.ContentTypeJSON, []byte(models.FormatObject("error", "internal server error")))
		c.Abort()
	})
}
