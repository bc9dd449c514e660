package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
)

// ContactHandler handles contact-form endpoints. Submission is public,
// listing is admin-only.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactCreatedData carries the identifying fields of a stored submission.
type ContactCreatedData struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// ContactCreatedResponse is the success envelope returned on submission.
type ContactCreatedResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    ContactCreatedData `json:"data"`
}

// ContactListResponse is the envelope returned on listing.
type ContactListResponse struct {
	Success bool            `json:"success"`
	Data    []model.Contact `json:"data"`
}

// CreateContact godoc
// @Summary Submit the public contact form
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact data"
// @Success 201 {object} ContactCreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := h.contactService.CreateContact(c.Request().Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, ContactCreatedResponse{
		Success: true,
		Message: "contact saved successfully",
		Data: ContactCreatedData{
			ID:        contact.ID,
			Name:      contact.Name,
			Timestamp: contact.CreatedAt,
		},
	})
}

// ListContacts godoc
// @Summary List all contact submissions, newest first
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ContactListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c echo.Context) error {
	contacts, err := h.contactService.ListContacts(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ContactListResponse{
		Success: true,
		Data:    contacts,
	})
}
