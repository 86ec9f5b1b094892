package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseIntParam(c *gin.Context, key string) (int, error) {
	return strconv.Atoi(c.Param(key))
}

func parseIntQuery(c *gin.Context, key string) (int, error) {
	return strconv.Atoi(c.Query(key))
}
