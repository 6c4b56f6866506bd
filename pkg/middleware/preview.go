package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/landingpro/landing/backend/go-services/internal/tokens"
	"github.com/landingpro/landing/backend/go-services/pkg/logger"
)

// Context keys set by PreviewAuth.
const (
	ClaimsKey  = "claims"
	PreviewKey = "preview"
)

// PreviewAuth guards ?preview=true requests. Such requests must carry
// "Authorization: Bearer <preview token>" signed with secret; when no secret
// is configured preview is disabled and they are rejected. Requests without
// the query flag pass through untouched. Tokens listed in rev (which may be
// nil) are rejected.
func PreviewAuth(secret string, rev *tokens.Revocations) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("preview") != "true" {
			c.Next()
			return
		}
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "preview is not enabled"})
			return
		}
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing Authorization header"})
			return
		}
		// Expect 'Bearer <token>'
		var raw string
		if n, _ := fmt.Sscanf(auth, "Bearer %s", &raw); n != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid Authorization header"})
			return
		}
		claims, err := tokens.ParsePreviewToken(secret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token", "details": err.Error()})
			return
		}
		revoked, err := rev.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logger.Errorf("preview token revocation check failed: %v", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "token check unavailable"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "token revoked"})
			return
		}

		c.Set(ClaimsKey, map[string]interface{}{"sub": claims.Subject, "scope": claims.Scope})
		c.Set(PreviewKey, true)
		c.Next()
	}
}

// IsPreview reports whether PreviewAuth admitted the request as a preview.
func IsPreview(c *gin.Context) bool {
	return c.GetBool(PreviewKey)
}

// limitKey picks the rate limit key: the preview subject when present,
// otherwise the client IP.
func limitKey(c *gin.Context) string {
	if v, ok := c.Get(ClaimsKey); ok {
		if cm, ok2 := v.(map[string]interface{}); ok2 {
			if sub, ok3 := cm["sub"].(string); ok3 && sub != "" {
				return "sub:" + sub
			}
		}
	}
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}
