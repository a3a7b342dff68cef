package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"upravytelka/internal/config"
	"upravytelka/internal/middleware"
	"upravytelka/internal/modules/health"
	"upravytelka/internal/modules/lead"
	"upravytelka/internal/telegram"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using process environment")
	}

	cfg := config.Load()

	tg := telegram.New(telegram.Config{
		Token:  cfg.TelegramBotToken,
		ChatID: cfg.TelegramChatID,
	})

	leadService := lead.NewService(cfg, tg)
	leadHandler := lead.NewHandler(leadService)
	healthHandler := health.NewHandler(cfg)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.BodyLimit(middleware.MaxBodyBytes))

	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	{
		leadHandler.RegisterRoutes(api)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
