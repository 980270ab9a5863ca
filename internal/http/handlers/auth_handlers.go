package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/twofasvc/domain"
	"github.com/you/twofasvc/internal/logger"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
	qrSvc   domain.QRService
	log     *logger.Logger
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, qrSvc domain.QRService, log *logger.Logger) *AuthHandlers {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthHandlers{
		authSvc: authSvc,
		qrSvc:   qrSvc,
		log:     log,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=80"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the first login stage (username + password)
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TwoFactorRequest represents the second login stage (TOTP code)
type TwoFactorRequest struct {
	PendingToken string `json:"pending_token" binding:"required"`
	Code         string `json:"code" binding:"required"`
}

// Register handles user registration. The response carries the provisioning
// URI and its QR rendering; neither is ever returned again.
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		h.log.Error().Err(err).Msg("registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	qrPNG, err := h.qrSvc.RenderPNG(result.ProvisioningURI)
	if err != nil {
		h.log.Error().Err(err).Msg("QR rendering failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render enrollment QR code"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"user_id":          result.UserID,
			"username":         result.Username,
			"provisioning_uri": result.ProvisioningURI,
			"qr_png_base64":    base64.StdEncoding.EncodeToString(qrPNG),
			"message":          "Scan the QR code with your authenticator app, then log in.",
		},
	})
}

// Login handles the password stage. Unknown usernames and wrong passwords
// get the same response body and status.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pending, err := h.authSvc.BeginLogin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"pending_token": pending.Token,
			"expires_at":    pending.ExpiresAt.Unix(),
			"message":       "Password accepted. Submit your verification code.",
		},
	})
}

// VerifyTwoFactor handles the TOTP stage and issues the session token
func (h *AuthHandlers) VerifyTwoFactor(c *gin.Context) {
	var req TwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.CompleteLogin(c.Request.Context(), req.PendingToken, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCode):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid verification code"})
		case errors.Is(err, domain.ErrPendingAuthExpired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login attempt expired, start over"})
		default:
			h.log.Error().Err(err).Msg("second factor verification failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"session_token": result.SessionToken,
			"token_type":    "Bearer",
			"expires_in":    result.ExpiresIn,
			"user": gin.H{
				"id":       result.User.ID,
				"username": result.User.Username,
			},
		},
	})
}

// Logout destroys the current session. Safe to call twice.
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		h.log.Error().Err(err).Msg("logout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Logged out"}})
}

// Me returns the authenticated user's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), userID.(uint))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.log.Error().Err(err).Msg("profile lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"created_at": user.CreatedAt,
		},
	})
}
