package handler

import (
	"errors"
	"log"
	"net/http"
	"reflect"
	"strings"

	"hospital-records-api/internal/service"
	"hospital-records-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures under json field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// respondError is the single translation point from service failures to the
// response envelope. Unexpected failures become a generic server error.
func respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.ValidationErrorResponse(c, validationErr.Fields)
	case errors.Is(err, service.ErrHospitalNotFound),
		errors.Is(err, service.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("unexpected error: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Server Error")
	}
}

// bindJSON binds the request body and writes a validation failure response
// if the payload is malformed. Returns false if the request was rejected.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]service.FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, service.FieldError{
					Field:   fe.Field(),
					Message: validationMessage(fe),
				})
			}
			utils.ValidationErrorResponse(c, fields)
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		}
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Please include a valid email"
	case "min":
		return fe.Field() + " must have at least " + fe.Param() + " entries or characters"
	case "max":
		return fe.Field() + " cannot be more than " + fe.Param() + " characters"
	case "gte":
		return fe.Field() + " must be at least " + fe.Param()
	case "lte":
		return fe.Field() + " cannot be more than " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	}
	return fe.Field() + " is invalid"
}
