package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xAnupam/Mental-Health-ChatBot/internal/config"
	"github.com/0xAnupam/Mental-Health-ChatBot/internal/conversation"
)

type Handler struct {
	Cfg     config.Config
	ChatSvc *conversation.Service
}

func NewHandler(cfg config.Config, chatSvc *conversation.Service) *Handler {
	return &Handler{Cfg: cfg, ChatSvc: chatSvc}
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
