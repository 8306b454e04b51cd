package pkg

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam parses the ":id" route parameter as an unsigned integer.
func ParseIDParam(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(id), nil
}
