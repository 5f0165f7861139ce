package main

import (
	"log"
	"net/http"

	_ "rootdex/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"rootdex/internal/auth"
	"rootdex/internal/cache"
	"rootdex/internal/config"
	"rootdex/internal/db"
	"rootdex/internal/handler"
	"rootdex/internal/model"
	"rootdex/internal/repository"
	"rootdex/internal/router"
	"rootdex/internal/service"
)

// @title Rootdex API
// @version 1.0
// @description Device compatibility catalog API with news, coordinates, issue tracking and moderated device proposals.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Device{},
		&model.News{},
		&model.Coord{},
		&model.Issue{},
		&model.DeviceProposal{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}
	if err := db.EnsureFulltextIndexes(gormDB); err != nil {
		// q-filtered searches will error until these indexes exist;
		// plain listing and filtering still work.
		log.Printf("fulltext indexes: %v", err)
	}

	var cacheClient cache.Cache
	if cfg.RedisAddr != "" {
		cacheClient = cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	} else {
		cacheClient = cache.NewMemory()
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	deviceRepo := repository.NewDeviceRepository(gormDB)
	newsRepo := repository.NewNewsRepository(gormDB)
	coordRepo := repository.NewCoordRepository(gormDB)
	issueRepo := repository.NewIssueRepository(gormDB)
	proposalRepo := repository.NewProposalRepository(gormDB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	captcha := service.NewTurnstileVerifier(cfg.TurnstileSecret, "")
	notifier := service.NewDiscordNotifier(cfg.DiscordWebhookURL)
	proposalService := service.NewProposalService(proposalRepo, captcha, notifier)
	uptimeService := service.NewUptimeService(cfg.UptimeRobotAPIKey, "", cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	deviceHandler := handler.NewDeviceHandler(deviceRepo)
	newsHandler := handler.NewNewsHandler(newsRepo)
	coordHandler := handler.NewCoordHandler(coordRepo)
	issueHandler := handler.NewIssueHandler(issueRepo)
	proposalHandler := handler.NewProposalHandler(proposalRepo, proposalService)
	statusHandler := handler.NewStatusHandler(uptimeService)

	router.Register(
		e,
		cfg,
		authHandler,
		deviceHandler,
		newsHandler,
		coordHandler,
		issueHandler,
		proposalHandler,
		statusHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
