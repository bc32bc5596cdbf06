package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozanc/mentorhub/internal/app/models/dto"
	"github.com/ozanc/mentorhub/internal/pkg/apperrors"
)

// HandleAPIError maps service and repository errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrProjectApproved):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Approved projects cannot be deleted")
	case errors.Is(err, apperrors.ErrStudentHasApprovedProjects):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Student has approved projects and cannot be deleted")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrMentorNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Mentor not found")
	case errors.Is(err, apperrors.ErrProjectNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Project not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrPRNAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Student with this PRN already exists")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrInvalidStatus):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid project status")
	case errors.Is(err, apperrors.ErrInvalidSenderType):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid sender type")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, errorMessage(err, "Validation failed"))
	default:
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleBindingError responds to a failed request body bind
func HandleBindingError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
	errorDetail = errorDetail.WithDetails(err.Error())

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// errorMessage prefers the wrapped error text over the fallback so that
// validation failures carry the offending field through to the client
func errorMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
