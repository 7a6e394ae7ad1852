package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/usecase/discovery"
)

type DiscoveryHandler struct {
	discoveryUseCase *discovery.DiscoveryUseCase
}

func NewDiscoveryHandler(discoveryUseCase *discovery.DiscoveryUseCase) *DiscoveryHandler {
	return &DiscoveryHandler{discoveryUseCase: discoveryUseCase}
}

// GetFeed handles GET /discover
// @Summary Current discovery candidate
// @Description Candidate at the cursor, or the locked/exhausted display state
// @Tags discovery
// @Produce json
// @Success 200 {object} discovery.FeedResponse
// @Router /discover [get]
func (h *DiscoveryHandler) GetFeed(c *gin.Context) {
	resp, err := h.discoveryUseCase.Current()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get feed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Swipe handles POST /discover/swipe
// @Summary Swipe the current candidate
// @Tags discovery
// @Accept json
// @Produce json
// @Param request body discovery.SwipeRequest true "Swipe direction"
// @Success 200 {object} discovery.SwipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /discover/swipe [post]
func (h *DiscoveryHandler) Swipe(c *gin.Context) {
	var req discovery.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	resp, err := h.discoveryUseCase.Swipe(&req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDiscoveryLocked):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrFeedExhausted):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to swipe"})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reset handles POST /discover/reset
func (h *DiscoveryHandler) Reset(c *gin.Context) {
	h.discoveryUseCase.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
