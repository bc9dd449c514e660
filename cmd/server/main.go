package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"portfolio/docs"
	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/handler"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/router"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// @title Portfolio API
// @version 1.0
// @description Portfolio content API with skills, projects, experience, a public contact form, and JWT-secured admin management.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.SkillCategory{},
		&model.Skill{},
		&model.Project{},
		&model.Experience{},
		&model.Contact{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("redis unavailable, caching and token revocation degrade to no-ops: %v", err)
	}

	uploads, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload storage init: %v", err)
	}

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(gormDB)
	skillRepo := repository.NewSkillCategoryRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	experienceRepo := repository.NewExperienceRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(adminRepo, jwtService, tokenStore)
	skillService := service.NewSkillService(skillRepo, cacheClient)
	projectService := service.NewProjectService(projectRepo, cacheClient, uploads)
	experienceService := service.NewExperienceService(experienceRepo)
	contactService := service.NewContactService(contactRepo)

	// Seed the single admin credential when absent
	if err := authService.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	skillHandler := handler.NewSkillHandler(skillService)
	projectHandler := handler.NewProjectHandler(projectService, uploads)
	experienceHandler := handler.NewExperienceHandler(experienceService)
	contactHandler := handler.NewContactHandler(contactService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokenStore,
		authHandler,
		skillHandler,
		projectHandler,
		experienceHandler,
		contactHandler,
	)

	// Serve uploaded images
	e.Static(storage.URLPrefix, uploads.Dir())

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
