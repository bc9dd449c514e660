package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrCategoryNotFound is returned when a skill category is not found.
	ErrCategoryNotFound = errors.New("skill category not found")
	// ErrCategoryExists is returned when a category with the same name already exists.
	ErrCategoryExists = errors.New("a category with this name already exists")
	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")
	// ErrSkillNotFound is returned when a skill position is out of bounds.
	ErrSkillNotFound = errors.New("skill not found")
	// ErrSkillExists is returned when a skill name collides within its category.
	ErrSkillExists = errors.New("a skill with this name already exists in this category")
	// ErrSkillNameRequired is returned when the skill name is empty.
	ErrSkillNameRequired = errors.New("skill name is required")
	// ErrInvalidSkillLevel is returned when the level is outside [1,100].
	ErrInvalidSkillLevel = errors.New("skill level must be between 1 and 100")
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTitleRequired is returned when a project title is empty.
	ErrTitleRequired = errors.New("project title is required")
	// ErrExperienceNotFound is returned when an experience entry is not found.
	ErrExperienceNotFound = errors.New("experience not found")
	// ErrMissingExperienceFields is returned when company or role is empty.
	ErrMissingExperienceFields = errors.New("company and role are required")
	// ErrMissingContactFields is returned when a contact submission misses a field.
	ErrMissingContactFields = errors.New("all fields are required")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrCategoryNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case ErrCategoryExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "CATEGORY_EXISTS")
	case ErrCategoryNameRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CATEGORY_NAME_REQUIRED")
	case ErrSkillNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "SKILL_NOT_FOUND")
	case ErrSkillExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "SKILL_EXISTS")
	case ErrSkillNameRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SKILL_NAME_REQUIRED")
	case ErrInvalidSkillLevel:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SKILL_LEVEL")
	case ErrProjectNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROJECT_NOT_FOUND")
	case ErrTitleRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TITLE_REQUIRED")
	case ErrExperienceNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "EXPERIENCE_NOT_FOUND")
	case ErrMissingExperienceFields:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EXPERIENCE_FIELDS_REQUIRED")
	case ErrMissingContactFields:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
