// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtbot/internal/bot"
	"mrtbot/internal/http/handlers"
	"mrtbot/internal/http/middleware"
	"mrtbot/internal/infra"
	"mrtbot/internal/modules/saved"
)

type ServerDeps struct {
	ChannelSecret string
	Bot           *bot.Service
	Saved         *saved.Service
	Verifier      infra.TokenVerifier
}

type Server struct {
	channelSecret string
	bot           *bot.Service
	saved         *saved.Service
	verifier      infra.TokenVerifier
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		channelSecret: deps.ChannelSecret,
		bot:           deps.Bot,
		saved:         deps.Saved,
		verifier:      deps.Verifier,
	}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	webhookHandler := handlers.NewWebhookHandler(s.channelSecret, s.bot)
	r.POST("/callback", webhookHandler.Handle)

	savedHandler := handlers.NewSavedHandler(s.saved)
	api := r.Group("/api", middleware.Auth(s.verifier))
	api.GET("/me/saved/:list", savedHandler.List)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
