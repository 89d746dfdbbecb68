package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamalkharel2002/trackship/internal/config"
	httpx "github.com/kamalkharel2002/trackship/internal/http"
	"github.com/kamalkharel2002/trackship/internal/http/handlers"
	"github.com/kamalkharel2002/trackship/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if container.RedisClient != nil {
		if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
			return err
		}
	}

	authH := handlers.NewAuthHandlers(container.AuthSvc, container.OTPSvc)
	userH := handlers.NewUserHandlers(container.AuthSvc)
	jwtMW := middleware.NewAuthMW(container.TokenSvc)

	ping := func(ctx context.Context) error {
		sqlDB, err := container.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
	r := httpx.BuildRouter(authH, userH, jwtMW, ping)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
