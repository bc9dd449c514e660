package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/service"
)

// SkillHandler handles skill category endpoints.
type SkillHandler struct {
	skillService service.SkillService
}

// NewSkillHandler creates a new skill handler.
func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// SkillRequest represents a single skill payload.
type SkillRequest struct {
	Name  string `json:"name" validate:"required"`
	Level int    `json:"level" validate:"required,min=1,max=100"`
	Color string `json:"color"`
}

// CreateCategoryRequest represents a new category payload.
type CreateCategoryRequest struct {
	Category string         `json:"category" validate:"required"`
	Icon     string         `json:"icon"`
	Skills   []SkillRequest `json:"skills" validate:"omitempty,dive"`
}

// UpdateCategoryRequest represents a category rename/icon payload.
type UpdateCategoryRequest struct {
	Category string `json:"category" validate:"required"`
	Icon     string `json:"icon"`
}

// ListCategories godoc
// @Summary List all skill categories
// @Tags skills
// @Produce json
// @Success 200 {array} model.SkillCategory
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills [get]
func (h *SkillHandler) ListCategories(c echo.Context) error {
	categories, err := h.skillService.ListCategories(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Get one skill category
// @Tags skills
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} model.SkillCategory
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills/{id} [get]
func (h *SkillHandler) GetCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	category, err := h.skillService.GetCategory(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, category)
}

// CreateCategory godoc
// @Summary Create a skill category
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCategoryRequest true "Category data"
// @Success 201 {object} model.SkillCategory
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills [post]
func (h *SkillHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := service.CreateCategoryInput{
		Category: req.Category,
		Icon:     req.Icon,
		Skills:   toSkillInputs(req.Skills),
	}
	category, err := h.skillService.CreateCategory(c.Request().Context(), in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary Rename a category or replace its icon
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body UpdateCategoryRequest true "Category data"
// @Success 200 {object} model.SkillCategory
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills/{id} [put]
func (h *SkillHandler) UpdateCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.skillService.UpdateCategory(c.Request().Context(), id, req.Category, req.Icon)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category and all its skills
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills/{id} [delete]
func (h *SkillHandler) DeleteCategory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.skillService.DeleteCategory(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "skill category deleted successfully",
	})
}

// AddSkill godoc
// @Summary Add a skill to a category
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body SkillRequest true "Skill data"
// @Success 201 {object} model.SkillCategory
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills/{id}/skill [post]
func (h *SkillHandler) AddSkill(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.skillService.AddSkill(c.Request().Context(), id, service.SkillInput{
		Name:  req.Name,
		Level: req.Level,
		Color: req.Color,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateSkill godoc
// @Summary Update the skill at a position within a category
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param index path int true "Skill position"
// @Param request body SkillRequest true "Skill data"
// @Success 200 {object} model.SkillCategory
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills/{id}/skill/{index} [put]
func (h *SkillHandler) UpdateSkill(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	index, err := parseIndex(c)
	if err != nil {
		return err
	}

	var req SkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.skillService.UpdateSkillAt(c.Request().Context(), id, index, service.SkillInput{
		Name:  req.Name,
		Level: req.Level,
		Color: req.Color,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteSkill godoc
// @Summary Delete the skill at a position within a category
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param index path int true "Skill position"
// @Success 200 {object} model.SkillCategory
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills/{id}/skill/{index} [delete]
func (h *SkillHandler) DeleteSkill(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	index, err := parseIndex(c)
	if err != nil {
		return err
	}

	category, err := h.skillService.DeleteSkillAt(c.Request().Context(), id, index)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, category)
}

// Stats godoc
// @Summary Skill statistics overview
// @Tags skills
// @Produce json
// @Success 200 {object} service.SkillStats
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills/stats/overview [get]
func (h *SkillHandler) Stats(c echo.Context) error {
	stats, err := h.skillService.Stats(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}

func toSkillInputs(reqs []SkillRequest) []service.SkillInput {
	inputs := make([]service.SkillInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, service.SkillInput{Name: r.Name, Level: r.Level, Color: r.Color})
	}
	return inputs
}

// parseID parses the :id path parameter as a UUID.
func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid ID format",
			Code:  "INVALID_ID",
		})
	}
	return id, nil
}

// parseIndex parses the :index path parameter as a non-negative integer.
func parseIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid skill index",
			Code:  "INVALID_INDEX",
		})
	}
	return index, nil
}
