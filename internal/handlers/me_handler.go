package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pontolago/ponto-api/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	email, exists := c.Get(middleware.ContextUserEmail)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	name, _ := c.Get(middleware.ContextUserName)
	role, _ := c.Get(middleware.ContextUserRole)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"email": email,
			"name":  name,
			"role":  role,
		},
	})
}
