package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// ProjectHandler handles project endpoints. Create and update accept
// multipart form data with an optional screenshot file.
type ProjectHandler struct {
	projectService service.ProjectService
	uploads        *storage.Local
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService, uploads *storage.Local) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, uploads: uploads}
}

// ListProjects godoc
// @Summary List all projects, newest first
// @Tags projects
// @Produce json
// @Success 200 {array} model.Project
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.ListProjects(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, projects)
}

// CreateProject godoc
// @Summary Create a project with an optional screenshot upload
// @Tags projects
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Project title"
// @Param screenshot formData file false "Screenshot image"
// @Success 201 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	in := projectInputFromForm(c)

	screenshotURL, err := h.storeScreenshot(c)
	if err != nil {
		return err
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), in, screenshotURL)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, project)
}

// UpdateProject godoc
// @Summary Update a project; empty fields keep their previous value
// @Tags projects
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param screenshot formData file false "Replacement screenshot"
// @Success 200 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	in := projectInputFromForm(c)

	screenshotURL, err := h.storeScreenshot(c)
	if err != nil {
		return err
	}

	project, err := h.projectService.UpdateProject(c.Request().Context(), id, in, screenshotURL)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.projectService.DeleteProject(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "project deleted",
	})
}

// storeScreenshot saves the optional screenshot file field and returns its
// public URL path, or nil when no file accompanied the request.
func (h *ProjectHandler) storeScreenshot(c echo.Context) (*string, error) {
	file, err := c.FormFile("screenshot")
	if err != nil {
		// No file field on the request
		return nil, nil
	}

	src, err := file.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "could not read uploaded file",
			Code:  "INVALID_UPLOAD",
		})
	}
	defer src.Close()

	url, err := h.uploads.Save(file.Filename, src)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to store uploaded file",
			Code:  "UPLOAD_FAILED",
		})
	}
	return &url, nil
}

func projectInputFromForm(c echo.Context) service.ProjectInput {
	return service.ProjectInput{
		Title:          c.FormValue("title"),
		Description1:   c.FormValue("description1"),
		Description2:   c.FormValue("description2"),
		Description3:   c.FormValue("description3"),
		Description4:   c.FormValue("description4"),
		DeploymentLink: c.FormValue("deploymentLink"),
		GithubLink:     c.FormValue("githubLink"),
	}
}
