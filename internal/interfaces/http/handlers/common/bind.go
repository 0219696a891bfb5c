// Package common provides shared HTTP handler utilities.
package common

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/utils"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.UseJSONFieldNames(v)
	}
}

// ValidationMessager is implemented by requests that answer every failed
// binding constraint with one fixed client message.
type ValidationMessager interface {
	ValidationMessage() string
}

// BindJSON decodes the request body into req and checks its binding tags.
// Decoding and validation failures are reported as validation errors so
// that both map to 400.
func BindJSON(c *gin.Context, req any, log logger.Interface) error {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Warnw("invalid request body", "path", c.FullPath(), "error", err)
		return errors.NewValidationError(bindingMessage(req, err))
	}
	return nil
}

func bindingMessage(req any, err error) string {
	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return utils.BindingErrorMessage(err)
	}
	if m, ok := req.(ValidationMessager); ok {
		return m.ValidationMessage()
	}
	return utils.BindingErrorMessage(err)
}
