package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: profileUseCase}
}

// GetMyProfile handles GET /profile/me
// @Summary Get my profile
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	p, err := h.profileUseCase.Me()
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateMyProfile handles PUT /profile/me
// @Summary Update my profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body profile.UpdateProfileRequest true "Profile update data"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /profile/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	p, err := h.profileUseCase.Update(&req)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetCompletion handles GET /profile/me/completion
// @Summary Get completion score
// @Description Completion score with per-dimension breakdown, recomputed on each read
// @Tags profile
// @Produce json
// @Success 200 {object} scoring.Breakdown
// @Router /profile/me/completion [get]
func (h *ProfileHandler) GetCompletion(c *gin.Context) {
	b, err := h.profileUseCase.Completion()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to compute completion"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetProfileByID handles GET /profile/:profile_id
func (h *ProfileHandler) GetProfileByID(c *gin.Context) {
	p, err := h.profileUseCase.GetByID(c.Param("profile_id"))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetPeople handles GET /people
func (h *ProfileHandler) GetPeople(c *gin.Context) {
	c.JSON(http.StatusOK, h.profileUseCase.People())
}

// GetOptions handles GET /options
func (h *ProfileHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.profileUseCase.Options())
}
