package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/handler"
)

// Register wires routes and middleware. Read endpoints and the contact form
// are public; every mutating endpoint and the contact listing require a valid
// admin access token.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	skillHandler *handler.SkillHandler,
	projectHandler *handler.ProjectHandler,
	experienceHandler *handler.ExperienceHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/admin/login", authHandler.Login)
	api.POST("/admin/refresh", authHandler.Refresh)

	api.GET("/skills", skillHandler.ListCategories)
	api.GET("/skills/stats/overview", skillHandler.Stats)
	api.GET("/skills/:id", skillHandler.GetCategory)
	api.GET("/projects", projectHandler.ListProjects)
	api.GET("/experiences", experienceHandler.ListExperiences)
	api.POST("/contacts", contactHandler.CreateContact)

	// Secured routes (require a valid, non-revoked admin access token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), rejectRevoked(tokenStore))

	secured.POST("/admin/logout", authHandler.Logout)

	secured.POST("/skills", skillHandler.CreateCategory)
	secured.PUT("/skills/:id", skillHandler.UpdateCategory)
	secured.DELETE("/skills/:id", skillHandler.DeleteCategory)
	secured.POST("/skills/:id/skill", skillHandler.AddSkill)
	secured.PUT("/skills/:id/skill/:index", skillHandler.UpdateSkill)
	secured.DELETE("/skills/:id/skill/:index", skillHandler.DeleteSkill)

	secured.POST("/projects", projectHandler.CreateProject)
	secured.PUT("/projects/:id", projectHandler.UpdateProject)
	secured.DELETE("/projects/:id", projectHandler.DeleteProject)

	secured.POST("/experiences", experienceHandler.CreateExperience)
	secured.PUT("/experiences/:id", experienceHandler.UpdateExperience)
	secured.DELETE("/experiences/:id", experienceHandler.DeleteExperience)

	secured.GET("/contacts", contactHandler.ListContacts)
}

// rejectRevoked blocks access tokens that were blacklisted by a logout.
func rejectRevoked(tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok || claims.ID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if revoked, _ := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID); revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "token has been revoked")
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
