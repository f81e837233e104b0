package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/property_backoffice/internal/utils"
)

// APIKeyHeader is where machine clients present their key.
const APIKeyHeader = "X-API-Key"

// bankImportUserID is recorded as the actor on rows written by the import pipeline.
const bankImportUserID = "system:bank-import"

// APIKeyAuth admits requests whose X-API-Key matches the bcrypt hash. An empty
// hash rejects everything, so the webhook is closed until a key is configured.
func APIKeyAuth(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		key := c.GetHeader(APIKeyHeader)
		if key == "" || keyHash == "" || !utils.CheckSecretHash(key, keyHash) {
			logger.Warn("API key rejected", slog.Bool("key_present", key != ""))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		ctx := WithLogger(WithUserID(c.Request.Context(), bankImportUserID),
			logger.With(slog.String("user_id", bankImportUserID)))
		c.Request = c.Request.WithContext(ctx)
		c.Set(authMethodKey, "api_key")
		c.Next()
	}
}
