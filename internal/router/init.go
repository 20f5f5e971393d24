package router

import (
	"github.com/oksasatya/go-chat-memory/internal/application"
	"github.com/oksasatya/go-chat-memory/internal/container"
	pginfra "github.com/oksasatya/go-chat-memory/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-chat-memory/internal/interface/http"
	"github.com/oksasatya/go-chat-memory/internal/router/modules"
)

// InitModules builds the credential, memory and chat services from the
// container singletons and registers the feature modules.
// This function should be called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	creds := application.NewCredentialService(pginfra.NewUserRepository(pool), cfg.BcryptCost, logger)
	memory := application.NewMemoryService(pginfra.NewMemoryRepository(pool), cfg.MemoryRetention, logger)
	chat := application.NewChatService(memory, container.GetAssistant(), logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(creds, logger)))
	r.Add(modules.NewChatModule(handlers.NewChatHandler(chat, memory, logger), creds))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
