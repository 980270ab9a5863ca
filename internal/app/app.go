package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/twofasvc/internal/config"
	httpx "github.com/you/twofasvc/internal/http"
	"github.com/you/twofasvc/internal/http/handlers"
	"github.com/you/twofasvc/internal/http/middleware"
	"github.com/you/twofasvc/internal/logger"
)

func Run(cfg *config.Config) error {
	log := logger.New("twofasvc")

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg, log)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc, c.QRSvc, log)
	authMW := middleware.NewAuthMW(c.TokenSvc, c.SessionRepo)

	r := httpx.BuildRouter(authH, authMW, log)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, r)
}
