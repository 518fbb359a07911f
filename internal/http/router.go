package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/MEDWEDU/Lettera/internal/http/handlers"
	"github.com/MEDWEDU/Lettera/internal/http/middleware"
)

// Handlers bundles every handler group the router mounts.
type Handlers struct {
	Auth     *handlers.AuthHandlers
	User     *handlers.UserHandlers
	Chat     *handlers.ChatHandlers
	Media    *handlers.MediaHandlers
	Presence *handlers.PresenceHandlers
}

// HealthChecker reports reachability of a backing store.
type HealthChecker func() error

// BuildRouter assembles the HTTP surface.
func BuildRouter(h Handlers, authMW *middleware.AuthMW, logger zerolog.Logger, healthChecks map[string]HealthChecker) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), middleware.Recovery(logger))

	r.GET("/health", func(c *gin.Context) {
		status := gin.H{"ok": true}
		for name, check := range healthChecks {
			if err := check(); err != nil {
				status[name] = "unreachable"
			} else {
				status[name] = "ok"
			}
		}
		c.JSON(200, status)
	})

	auth := r.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/verify-email", h.Auth.VerifyEmail)
	auth.POST("/resend-verification", h.Auth.ResendVerification)
	auth.POST("/refresh-token", h.Auth.Refresh)

	v := r.Group("/", authMW.RequireAuth())
	v.GET("/auth/me", h.Auth.Me)
	v.POST("/auth/logout", h.Auth.Logout)

	v.PUT("/users/me", h.User.UpdateProfile)
	v.GET("/users/search", h.User.Search)
	v.GET("/search/history", h.User.SearchHistory)
	v.DELETE("/search/history", h.User.ClearSearchHistory)

	v.POST("/presence/ping", h.Presence.Ping)
	v.GET("/presence", h.Presence.GetMany)
	v.GET("/presence/:id", h.Presence.Get)

	v.POST("/chats", h.Chat.OpenChat)
	v.GET("/chats", h.Chat.ListChats)
	v.POST("/chats/:id/messages", h.Chat.SendMessage)
	v.GET("/chats/:id/messages", h.Chat.ListMessages)

	v.POST("/media", h.Media.Upload)
	v.GET("/media/:id/url", h.Media.PresignGet)
	v.DELETE("/media/:id", h.Media.Delete)

	return r
}
