package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"viralpack/auth"
	"viralpack/internal/logger"
)

// BetaGate 는 vp_beta 쿠키의 서명/만료를 검증하고, 유효하지 않으면 요청을
// 차단한다. 게이트를 통과한 요청만 생성 파이프라인에 도달한다.
func BetaGate(tokens *auth.BetaTokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Access denied"})
			return
		}

		if err := tokens.Parse(token); err != nil {
			logger.Log.Debugf("beta cookie rejected: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Access denied"})
			return
		}

		c.Next()
	}
}
