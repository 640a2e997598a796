package auth

import (
	"net/http"

	apperrors "caregiver-shifts-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// IssueTokenRequest asks for a token for a given principal
type IssueTokenRequest struct {
	Subject string `json:"subject" validate:"required,max=64"`
	Name    string `json:"name" validate:"max=120"`
	Role    Role   `json:"role" validate:"required,oneof=caregiver family supervisor"`
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service   *AuthService
	config    *AuthConfig
	validator *validator.Validate
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, config *AuthConfig, v *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, config: config, validator: v}
}

// IssueToken handles POST /auth/token
// @Summary Issue a development token
// @Description Issue a bearer token for a caregiver, family member or supervisor. Disabled in production.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body IssueTokenRequest true "Principal"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Token issuance disabled"
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	if !h.config.AllowIssue {
		c.JSON(http.StatusNotFound, gin.H{"error": "token issuance is disabled"})
		return
	}

	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	resp, err := h.service.GenerateJWT(&Principal{Subject: req.Subject, Name: req.Name, Role: req.Role})
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
