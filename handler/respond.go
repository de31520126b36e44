package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"campus-backend/errs"
	"campus-backend/httpmiddleware"
)

func init() {
	// Report validation failures under the wire name, not the Go one.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "" {
				tag = fld.Tag.Get("form")
			}
			name := strings.SplitN(tag, ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// fieldError is one offending field in a 422 response body.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		writeBindError(c, err)
		return false
	}
	return true
}

func writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": details})
		return
	}

	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "oneof":
		return "value must be one of: " + fe.Param()
	case "min":
		return "value must be at least " + fe.Param()
	case "max":
		return "value must be at most " + fe.Param()
	case "datetime":
		return "value must match format " + fe.Param()
	default:
		return "invalid value"
	}
}

// writeError maps the error taxonomy onto HTTP statuses. notFound is
// the resource-specific detail used for errs.ErrNotFound.
func writeError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, errs.ErrStoreUnavailable):
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"detail": "database not configured"})
	case errors.Is(err, errs.ErrInvalidID):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Invalid ID format"})
	case errors.Is(err, errs.ErrNotFound):
		if notFound == "" {
			notFound = "Not found"
		}
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": notFound})
	case errors.Is(err, errs.ErrEmptyBatch):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "No entries to mark"})
	default:
		httpmiddleware.RequestLogger(c).Error("database error", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "database error"})
	}
}
