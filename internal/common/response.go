package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatResponse is the success shape. Exactly one of ChatResponse and
// ErrorResponse is written per request, never both.
type ChatResponse struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func Text(c *gin.Context, text string) {
	c.JSON(http.StatusOK, ChatResponse{Text: text})
}

// FailValidation is the fail-fast client-error shape: no context fetch,
// gateway call, or write has happened when it is sent.
func FailValidation(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
}

// FailServer covers every downstream failure with one generic shape.
func FailServer(c *gin.Context, details string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Failed to process your request",
		Details: details,
	})
}
