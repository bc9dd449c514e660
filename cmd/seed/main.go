package main

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/service"
)

// Seeds a fresh deployment with the default admin and sample portfolio
// content. Existing categories, projects, and experiences are left untouched.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.SkillCategory{},
		&model.Skill{},
		&model.Project{},
		&model.Experience{},
		&model.Contact{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	adminRepo := repository.NewAdminRepository(gormDB)
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	authService := service.NewAuthService(adminRepo, auth.NewJWTService(cfg.JWTSecret), auth.NewTokenStore(cacheClient))
	if err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	skillService := service.NewSkillService(repository.NewSkillCategoryRepository(gormDB), cacheClient)
	created := 0
	for _, in := range sampleCategories() {
		if _, err := skillService.CreateCategory(ctx, in); err != nil {
			if err == apperrors.ErrCategoryExists {
				continue
			}
			log.Fatalf("Failed to seed category %q: %v", in.Category, err)
		}
		created++
	}
	log.Printf("Skill categories created: %d", created)

	projectRepo := repository.NewProjectRepository(gormDB)
	seededProjects, err := seedProjects(ctx, gormDB, projectRepo)
	if err != nil {
		log.Fatalf("Failed to seed projects: %v", err)
	}
	log.Printf("Projects created: %d", seededProjects)

	experienceRepo := repository.NewExperienceRepository(gormDB)
	seededExperiences, err := seedExperiences(ctx, gormDB, experienceRepo)
	if err != nil {
		log.Fatalf("Failed to seed experiences: %v", err)
	}
	log.Printf("Experiences created: %d", seededExperiences)

	log.Println("Seed completed successfully!")
}

func sampleCategories() []service.CreateCategoryInput {
	return []service.CreateCategoryInput{
		{
			Category: "Frontend",
			Icon:     "🖥️",
			Skills: []service.SkillInput{
				{Name: "React", Level: 90, Color: "bg-cyan-500"},
				{Name: "TypeScript", Level: 80, Color: "bg-blue-500"},
				{Name: "Tailwind CSS", Level: 85, Color: "bg-teal-500"},
			},
		},
		{
			Category: "Backend",
			Icon:     "⚙️",
			Skills: []service.SkillInput{
				{Name: "Go", Level: 85, Color: "bg-sky-500"},
				{Name: "MySQL", Level: 75, Color: "bg-orange-500"},
				{Name: "Redis", Level: 70, Color: "bg-red-500"},
			},
		},
	}
}

func seedProjects(ctx context.Context, gormDB *gorm.DB, repo repository.ProjectRepository) (int, error) {
	var count int64
	if err := gormDB.WithContext(ctx).Model(&model.Project{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	projects := []model.Project{
		{
			Title:          "Portfolio Website",
			Description1:   "Single-page portfolio with an admin panel for content management.",
			Description2:   "REST API backed by MySQL with Redis caching.",
			DeploymentLink: "https://example.com",
			GithubLink:     "https://github.com/example/portfolio",
		},
		{
			Title:        "URL Shortener",
			Description1: "Small link shortener with click statistics.",
			GithubLink:   "https://github.com/example/shortener",
		},
	}
	for i := range projects {
		if err := repo.Create(ctx, &projects[i]); err != nil {
			return i, err
		}
	}
	return len(projects), nil
}

func seedExperiences(ctx context.Context, gormDB *gorm.DB, repo repository.ExperienceRepository) (int, error) {
	var count int64
	if err := gormDB.WithContext(ctx).Model(&model.Experience{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	start1 := time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)
	end1 := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	start2 := time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC)

	experiences := []model.Experience{
		{
			Company:     "Acme Corp",
			Role:        "Software Engineer",
			StartDate:   &start1,
			EndDate:     &end1,
			Description: "Built internal tools and customer-facing APIs.",
		},
		{
			Company:     "Initech",
			Role:        "Senior Software Engineer",
			StartDate:   &start2,
			Description: "Backend services and infrastructure.",
		},
	}
	for i := range experiences {
		if err := repo.Create(ctx, &experiences[i]); err != nil {
			return i, err
		}
	}
	return len(experiences), nil
}
