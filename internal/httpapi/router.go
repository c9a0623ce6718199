package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/0xAnupam/Mental-Health-ChatBot/internal/config"
	"github.com/0xAnupam/Mental-Health-ChatBot/internal/conversation"
	"github.com/0xAnupam/Mental-Health-ChatBot/internal/httpapi/handlers"
	"github.com/0xAnupam/Mental-Health-ChatBot/internal/httpapi/middleware"
)

func NewRouter(cfg config.Config, chatSvc *conversation.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	// permissive by design: userId is an unauthenticated correlation key
	// generated in the browser, so any origin may call the endpoint.
	// OPTIONS is answered by this layer, which only engages for requests
	// carrying a cross-origin Origin header (browser preflights always do);
	// a bare OPTIONS without one falls through to the 404 handler
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	h := handlers.NewHandler(cfg, chatSvc)

	r.GET("/healthz", h.Ping)
	r.POST("/api/chat", h.Chat)

	return r
}
