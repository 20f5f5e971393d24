package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-chat-memory/internal/application"
	"github.com/oksasatya/go-chat-memory/internal/container"
	handlers "github.com/oksasatya/go-chat-memory/internal/interface/http"
	"github.com/oksasatya/go-chat-memory/internal/interface/middleware"
)

// ChatModule wires the authenticated chat routes.
// Protected: GET /api/ask, GET /api/history
type ChatModule struct {
	Handler *handlers.ChatHandler
	Creds   *application.CredentialService
}

func NewChatModule(h *handlers.ChatHandler, creds *application.CredentialService) *ChatModule {
	return &ChatModule{Handler: h, Creds: creds}
}

func (m *ChatModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.APIKeyAuth(m.Creds))
	// Per-user limiter; private addresses bypass it for local testing
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("/ask", m.Handler.Ask)
		auth.GET("/history", m.Handler.History)
	}
}
