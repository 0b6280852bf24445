package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/projecttasks/backend/internal/container"
	handlers "github.com/projecttasks/backend/internal/interface/http"
	"github.com/projecttasks/backend/internal/interface/middleware"
)

// AuthModule exposes the public credential endpoints.
// Public: POST /api/auth/register, POST /api/auth/login

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Brute-force protection per IP; fail-open when redis is not configured.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
