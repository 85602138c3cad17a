package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campsite/response"
)

// paramID parses a numeric path parameter, answering 400 on garbage.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Ungültige ID.")
		return 0, false
	}
	return uint(id), true
}
