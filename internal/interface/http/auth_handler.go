package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-chat-memory/internal/application"
	"github.com/oksasatya/go-chat-memory/pkg/response"
	"github.com/oksasatya/go-chat-memory/pkg/validation"
)

type AuthHandler struct {
	Creds  *application.CredentialService
	Logger *logrus.Logger
}

func NewAuthHandler(creds *application.CredentialService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Creds: creds, Logger: logger}
}

type credentialsRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/register
// Returns the plaintext API key exactly once.
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	apiKey, err := h.Creds.Register(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserAlreadyExists):
			response.Error[any](c, http.StatusConflict, "user already registered", nil)
		case errors.Is(err, application.ErrEmptyUserID), errors.Is(err, application.ErrEmptyPassword):
			response.Error[any](c, http.StatusBadRequest, "user id and password are required", nil)
		default:
			h.Logger.WithError(err).Error("register failed")
			response.Error[any](c, http.StatusInternalServerError, "failed to create user", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"api_key": apiKey}, "user registered")
}

// Login POST /api/login
// Returns the stored API key; login never rotates credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	apiKey, err := h.Creds.Login(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error[any](c, http.StatusUnauthorized, "user not found", nil)
		case errors.Is(err, application.ErrInvalidCredentials):
			response.Error[any](c, http.StatusUnauthorized, "invalid password", nil)
		default:
			h.Logger.WithError(err).Error("login failed")
			response.Error[any](c, http.StatusInternalServerError, "failed to log in", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"api_key": apiKey}, "login successful")
}
