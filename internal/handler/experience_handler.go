package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// ExperienceHandler handles work experience endpoints.
type ExperienceHandler struct {
	experienceService service.ExperienceService
}

// NewExperienceHandler creates a new experience handler.
func NewExperienceHandler(experienceService service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

// ExperienceRequest represents an experience create/update payload.
type ExperienceRequest struct {
	Company     string     `json:"company" validate:"required"`
	Role        string     `json:"role" validate:"required"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description"`
}

// ExperienceResponse is an experience entry with its computed duration.
type ExperienceResponse struct {
	model.Experience
	Duration string `json:"duration"`
}

// ListExperiences godoc
// @Summary List all experience entries, most recent start date first
// @Tags experiences
// @Produce json
// @Success 200 {array} ExperienceResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /experiences [get]
func (h *ExperienceHandler) ListExperiences(c echo.Context) error {
	experiences, err := h.experienceService.ListExperiences(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	out := make([]ExperienceResponse, 0, len(experiences))
	for _, e := range experiences {
		out = append(out, toExperienceResponse(e))
	}
	return c.JSON(http.StatusOK, out)
}

// CreateExperience godoc
// @Summary Create an experience entry
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ExperienceRequest true "Experience data"
// @Success 201 {object} ExperienceResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /experiences [post]
func (h *ExperienceHandler) CreateExperience(c echo.Context) error {
	var req ExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	experience, err := h.experienceService.CreateExperience(c.Request().Context(), toExperienceInput(req))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, toExperienceResponse(*experience))
}

// UpdateExperience godoc
// @Summary Replace an experience entry
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience ID"
// @Param request body ExperienceRequest true "Experience data"
// @Success 200 {object} ExperienceResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /experiences/{id} [put]
func (h *ExperienceHandler) UpdateExperience(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req ExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	experience, err := h.experienceService.UpdateExperience(c.Request().Context(), id, toExperienceInput(req))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toExperienceResponse(*experience))
}

// DeleteExperience godoc
// @Summary Delete an experience entry
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /experiences/{id} [delete]
func (h *ExperienceHandler) DeleteExperience(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.experienceService.DeleteExperience(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "experience deleted successfully",
	})
}

func toExperienceInput(req ExperienceRequest) service.ExperienceInput {
	return service.ExperienceInput{
		Company:     req.Company,
		Role:        req.Role,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
}

func toExperienceResponse(e model.Experience) ExperienceResponse {
	return ExperienceResponse{Experience: e, Duration: e.Duration()}
}
