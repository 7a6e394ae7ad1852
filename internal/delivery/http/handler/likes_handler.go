package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/usecase/likes"
)

type LikesHandler struct {
	likesUseCase *likes.LikesUseCase
}

func NewLikesHandler(likesUseCase *likes.LikesUseCase) *LikesHandler {
	return &LikesHandler{likesUseCase: likesUseCase}
}

// List handles GET /likes
// @Summary Profiles that liked you
// @Description Locked entries are anonymised until unlocked
// @Tags likes
// @Produce json
// @Success 200 {array} likes.LikedYouEntry
// @Router /likes [get]
func (h *LikesHandler) List(c *gin.Context) {
	entries, err := h.likesUseCase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list likes"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Unlock handles POST /likes/:profile_id/unlock
// @Summary Unlock a liked-you profile
// @Tags likes
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 402 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /likes/{profile_id}/unlock [post]
func (h *LikesHandler) Unlock(c *gin.Context) {
	p, err := h.likesUseCase.Unlock(c.Param("profile_id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: "not enough coins"})
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to unlock"})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}
