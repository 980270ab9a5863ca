package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/twofasvc/internal/http/handlers"
	"github.com/you/twofasvc/internal/http/middleware"
	"github.com/you/twofasvc/internal/logger"
)

func BuildRouter(ah *handlers.AuthHandlers, authmw *middleware.AuthMW, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/2fa/verify", ah.VerifyTwoFactor)

	v := r.Group("/auth").Use(authmw.WithSession())
	v.GET("/me", ah.Me)
	v.POST("/logout", ah.Logout)

	return r
}
