package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"iphones-store/internal/auth"
	"iphones-store/internal/backend"
	"iphones-store/internal/catalog"
	"iphones-store/internal/checkout"
	"iphones-store/internal/config"
	"iphones-store/internal/logger"
	"iphones-store/internal/middleware"
	"iphones-store/internal/order"
	"iphones-store/internal/web"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := backend.NewClient(cfg.BackendURL)

	catalogRepo := catalog.NewRepository(client)
	catalogSvc := catalog.NewService(catalogRepo)

	orderRepo := order.NewRepository(client)
	orderSvc := order.NewService(orderRepo)

	checkoutSvc := checkout.NewService(orderSvc, cfg)

	idp := auth.ProviderFromConfig(cfg)
	sessions := auth.NewSessionProvider(cfg.SessionSecret)

	poller := order.NewPoller(orderSvc, 5*time.Second)
	poller.Start()
	defer poller.Stop()

	renderer, err := web.LoadTemplates("web/templates")
	if err != nil {
		log.Fatalf("load templates: %v", err)
	}

	limiter := middleware.NewRateLimiter()
	defer limiter.Close()

	h := web.NewHandler(catalogSvc, orderSvc, checkoutSvc, idp, sessions, poller, cfg)
	router := web.NewRouter(h, renderer, sessions, limiter)

	log.Printf("🚀 storefront running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}
