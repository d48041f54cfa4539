package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ServiceBearerAuthMiddleware создает middleware для аутентификации внутренних сервисов
// используя Bearer токен из заголовка Authorization.
// serviceName используется для идентификации сервиса в контексте запроса.
// secret приходит из конфигурации (CATALOGUE_SERVICE_API_KEY).
func ServiceBearerAuthMiddleware(serviceName string, secret string) gin.HandlerFunc {
	if secret == "" {
		panic("service token is not configured - set CATALOGUE_SERVICE_API_KEY")
	}

	secretBytes := []byte(secret)

	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "service auth required"})
			return
		}

		token := []byte(h[7:])
		if subtle.ConstantTimeCompare(token, secretBytes) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid service token"})
			return
		}

		c.Set("service", serviceName)
		c.Next()
	}
}
