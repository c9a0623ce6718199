package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/0xAnupam/Mental-Health-ChatBot/internal/common"
	"github.com/0xAnupam/Mental-Health-ChatBot/internal/conversation"
	"github.com/0xAnupam/Mental-Health-ChatBot/internal/httpapi/middleware"
)

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	// optional client-supplied turn id; replays with the same id are deduped
	TurnID string `json:"turnId"`
}

// Chat handles one chat turn: validate, fetch context, call the model,
// persist the user turn, respond. Strictly linear, no retries.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.FailValidation(c)
		return
	}
	if strings.TrimSpace(req.Message) == "" || strings.TrimSpace(req.UserID) == "" {
		common.FailValidation(c)
		return
	}

	userID := strings.TrimSpace(req.UserID)
	text, err := h.ChatSvc.Chat(c.Request.Context(), userID, req.Message, strings.TrimSpace(req.TurnID))
	if err != nil {
		reqID := middleware.GetRequestID(c)
		switch {
		case errors.Is(err, conversation.ErrUpstream):
			log.Printf("chat gateway call failed request_id=%s user=%s err=%v", reqID, userID, err)
		case errors.Is(err, conversation.ErrPersistence):
			// the reply was generated but the turn was not recorded; future
			// context windows will not contain this message
			log.Printf("chat persistence failed request_id=%s user=%s err=%v", reqID, userID, err)
		default:
			log.Printf("chat failed request_id=%s user=%s err=%v", reqID, userID, err)
		}
		common.FailServer(c, err.Error())
		return
	}

	common.Text(c, text)
}
