package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-chat-memory/internal/container"
	handlers "github.com/oksasatya/go-chat-memory/internal/interface/http"
	"github.com/oksasatya/go-chat-memory/internal/interface/middleware"
)

// AuthModule wires registration and login routes.
// Public: POST /api/register, POST /api/login
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits (no-op without Redis)
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIP(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
}
