package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/usecase/chat"
)

type ChatHandler struct {
	chatUseCase *chat.ChatUseCase
}

func NewChatHandler(chatUseCase *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{chatUseCase: chatUseCase}
}

// ListChats handles GET /chats
// @Summary Conversation list
// @Description Conversations most recently active first
// @Tags chat
// @Produce json
// @Success 200 {array} chat.ConversationSummary
// @Router /chats [get]
func (h *ChatHandler) ListChats(c *gin.Context) {
	summaries, err := h.chatUseCase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list chats"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// OpenChat handles GET /chats/:id and clears the unread count.
func (h *ChatHandler) OpenChat(c *gin.Context) {
	resp, err := h.chatUseCase.Open(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "conversation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to open chat"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SendMessageRequest carries the composer text. Empty text is accepted and
// dropped by the usecase, so no required binding here.
type SendMessageRequest struct {
	Text string `json:"text" binding:"max=2000"`
}

// SendMessage handles POST /chats/:id/messages
// @Summary Send a text message
// @Tags chat
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Message text"
// @Success 200 {object} domain.Message
// @Success 204 "whitespace-only text, nothing sent"
// @Failure 404 {object} ErrorResponse
// @Router /chats/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	msg, err := h.chatUseCase.SendText(c.Param("id"), sessionProfileID(c), req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "conversation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to send message"})
		return
	}
	if msg == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// SendGiftRequest names the catalog gift to send.
type SendGiftRequest struct {
	GiftID string `json:"gift_id" binding:"required"`
}

// SendGift handles POST /chats/:id/gifts
// @Summary Send a gift message
// @Tags chat
// @Accept json
// @Produce json
// @Param request body SendGiftRequest true "Gift to send"
// @Success 200 {object} domain.Message
// @Failure 402 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /chats/{id}/gifts [post]
func (h *ChatHandler) SendGift(c *gin.Context) {
	var req SendGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	msg, err := h.chatUseCase.SendGift(c.Param("id"), sessionProfileID(c), req.GiftID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: "not enough coins"})
		case errors.Is(err, domain.ErrConversationNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "conversation not found"})
		case errors.Is(err, domain.ErrGiftNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "gift not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to send gift"})
		}
		return
	}
	c.JSON(http.StatusOK, msg)
}

// ListGifts handles GET /gifts
func (h *ChatHandler) ListGifts(c *gin.Context) {
	c.JSON(http.StatusOK, h.chatUseCase.Gifts())
}
