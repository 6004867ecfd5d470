package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// HandleBindError replies 400 for a request body or query that failed to
// bind. Validation failures are reported field by field.
func HandleBindError(c *gin.Context, err error, message string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := dto.NewValidationErrors()
		for _, fe := range verrs {
			fields.AddError(fe.Field(), formatValidationError(fe))
		}
		errorDetail = errorDetail.WithDetails(fields.Errors)
	} else {
		errorDetail = errorDetail.WithDetails(err.Error())
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be greater than or equal to " + e.Param()
	case "lte":
		return e.Field() + " must be less than or equal to " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case validation.TagCode:
		return e.Field() + " must be 1-32 letters, digits, '.', '_' or '-' without spaces"
	case validation.TagNonBlank:
		return e.Field() + " must not be blank"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
