package middleware

import (
	"strings"

	"partner-ads/internal/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxClaims  = "claims"
	CookieName = "JWT"
)

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Authenticate reads a session token from the Authorization header or the
// JWT cookie. Requests without a valid token go through anonymously; the
// GraphQL layer decides what they may see.
func Authenticate(tokens TokenParser, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearer(c.GetHeader("Authorization"))
		if tokenString == "" {
			tokenString, _ = c.Cookie(CookieName)
		}
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			log.Debug("jwt parse error", zap.String("request_id", c.GetString(CtxRequestID)), zap.Error(err))
			c.Next()
			return
		}

		c.Set(CtxClaims, claims)
		c.Next()
	}
}

func bearer(header string) string {
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		token = strings.TrimPrefix(header, "JWT ")
		if token == header {
			return ""
		}
	}
	return strings.TrimSpace(token)
}

// Claims returns the verified claims of the request, nil when anonymous.
func Claims(c *gin.Context) *auth.Claims {
	claims, _ := c.Get(CtxClaims)
	cl, _ := claims.(*auth.Claims)
	return cl
}
