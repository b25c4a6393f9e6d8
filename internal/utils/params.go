package utils

import (
	"strconv"

	"github.com/ds3-project/ds3-backend/internal/constants"
	"github.com/gin-gonic/gin"
)

// GetMessageLimit extracts and clamps the message history limit from the request
func GetMessageLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultMessageLimit)))
	if err != nil || limit < 1 {
		return constants.DefaultMessageLimit
	}
	if limit > constants.MaxMessageLimit {
		return constants.MaxMessageLimit
	}
	return limit
}

// ParseIDParam parses a numeric path parameter
func ParseIDParam(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
