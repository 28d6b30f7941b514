package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/pontolago/ponto-api/internal/config"
	domain "github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/middleware"
)

// AuthHandler resolves the session identity. There is no credential
// store and no real authentication: the password only has to be
// present, and an email containing "admin" gets the admin role.
// Anything stronger is out of scope here.
type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// Simulated latency carried over from the original login flow.
	if h.config.LoginDelay > 0 {
		time.Sleep(h.config.LoginDelay)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	role := middleware.RoleUser
	if strings.Contains(email, "admin") {
		role = middleware.RoleAdmin
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = domain.DefaultName(email)
	}

	token, err := h.generateToken(email, name, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"email": email,
			"name":  name,
			"role":  role,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(email, name, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  email,
		"name": name,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
