package routes

import (
	"net/http"
	"time"

	"partner-ads/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

type Deps struct {
	Schema  graphql.Schema
	Tokens  middleware.TokenParser
	Limiter *middleware.RateLimiter
	Log     *zap.Logger

	// Media is served under MediaURL when set.
	Media    http.FileSystem
	MediaURL string

	MaxUploadSize int64
	CookieTTL     time.Duration
	SecureCookie  bool
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if d.Media != nil {
		r.StaticFS(d.MediaURL, d.Media)
	}

	h := &GraphQLHandler{
		schema:        d.Schema,
		maxUploadSize: d.MaxUploadSize,
		cookieTTL:     d.CookieTTL,
		secureCookie:  d.SecureCookie,
		log:           d.Log,
	}

	api := r.Group("/graphql")
	if d.Limiter != nil {
		api.Use(d.Limiter.Middleware())
	}
	api.Use(middleware.Authenticate(d.Tokens, d.Log))

	api.GET("/", h.Serve(false))
	api.POST("/", h.Serve(false))
	api.GET("/jwt/", h.Serve(true))
	api.POST("/jwt/", h.Serve(true))
}
