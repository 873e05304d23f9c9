package utils

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phonePattern matches international-ish phone numbers: optional leading +,
// then digits, spaces, dashes and parentheses.
var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomValidators(v)
	}
}

func registerCustomValidators(v *validator.Validate) {
	v.RegisterValidation("isodate", isISODate)
	v.RegisterValidation("phone", isPhoneNumber)
}

// isISODate accepts full ISO-8601 timestamps and plain dates.
func isISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if _, err := time.Parse(time.RFC3339, value); err == nil {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func isPhoneNumber(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// FormatValidationError formats the first violated rule into a readable
// message naming the offending field.
func FormatValidationError(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err.Error()
	}
	e := errs[0]
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), strings.ReplaceAll(e.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "isodate":
		return fmt.Sprintf("%s must be an ISO-8601 date", e.Field())
	case "phone":
		return fmt.Sprintf("%s must be a valid phone number", e.Field())
	default:
		return fmt.Sprintf("%s failed validation on the %q rule", e.Field(), e.Tag())
	}
}

// BindAndValidate binds the JSON request body to a struct and validates it
// against the struct's binding tags. Unknown body fields are ignored. If
// binding or validation fails, it sends a 400 response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			ErrorDetail(c, http.StatusBadRequest, "Validation error", FormatValidationError(err))
			return false
		}
		ErrorDetail(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return false
	}
	return true
}
