package main

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/my-diary/backend/internal/client"
	"github.com/my-diary/backend/internal/config"
	"github.com/my-diary/backend/internal/db"
	"github.com/my-diary/backend/internal/handler"
	"github.com/my-diary/backend/internal/logging"
	"github.com/my-diary/backend/internal/service"
)

func main() {
	// .env가 없어도 무시 (운영 환경은 환경변수로 주입)
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(os.Stderr)
	ctx := context.Background()

	pg, err := db.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		log.Error(ctx, "failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pg.Close()

	if err := pg.EnsureSchema(ctx); err != nil {
		log.Error(ctx, "failed to ensure schema", "error", err)
		os.Exit(1)
	}

	authService, err := service.NewAuthService(pg, pg, cfg.Auth)
	if err != nil {
		log.Error(ctx, "invalid auth config", "error", err)
		os.Exit(1)
	}

	scraper := client.NewQuoteScraper(cfg.Scraper.BaseURL)
	scraperPages, err := strconv.Atoi(cfg.Scraper.Pages)
	if err != nil || scraperPages <= 0 {
		scraperPages = 5
	}

	diaryService := service.NewDiaryService(pg)
	quoteService := service.NewQuoteService(pg, scraper, log.With("component", "quote"))
	questionService := service.NewQuestionService(pg)

	authHandler := handler.NewAuthHandler(authService)
	diaryHandler := handler.NewDiaryHandler(diaryService)
	quoteHandler := handler.NewQuoteHandler(quoteService, scraperPages)
	questionHandler := handler.NewQuestionHandler(questionService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.RequestIDMiddleware())
	router.Use(handler.RequestLogger(log.With("component", "http")))

	origins := strings.Split(cfg.Server.AllowedOrigins, ",")
	allowCredentials, _ := strconv.ParseBool(cfg.Server.AllowCredential)
	router.Use(handler.CORSMiddleware(origins, allowCredentials))

	router.GET("/healthz", handler.Healthz)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		protected := v1.Group("")
		protected.Use(handler.AuthMiddleware(authService))
		{
			protected.POST("/auth/logout", authHandler.Logout)
			protected.GET("/auth/me", authHandler.Me)

			protected.POST("/diaries", diaryHandler.Create)
			protected.GET("/diaries", diaryHandler.List)
			protected.GET("/diaries/:id", diaryHandler.Get)
			protected.PUT("/diaries/:id", diaryHandler.Update)
			protected.DELETE("/diaries/:id", diaryHandler.Delete)

			protected.GET("/quotes", quoteHandler.List)
			protected.GET("/quotes/random", quoteHandler.Random)
			protected.POST("/quotes/scrape", quoteHandler.Scrape)
			protected.POST("/quotes/:id/bookmark", quoteHandler.AddBookmark)
			protected.DELETE("/quotes/:id/bookmark", quoteHandler.RemoveBookmark)
			protected.GET("/bookmarks", quoteHandler.ListBookmarks)

			protected.GET("/questions/random", questionHandler.Random)
		}
	}

	addr := ":" + cfg.Server.Port
	log.Info(ctx, "starting server", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
