package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/travelease/callcenter/internal/shared/errors"
)

// ParseIDParam parses a positive numeric id from a URL path parameter.
// entityName is used in the error message, e.g. "call" gives "Invalid call ID".
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := strings.TrimSpace(c.Param(paramName))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("Invalid %s ID", entityName))
	}
	return uint(id), nil
}
