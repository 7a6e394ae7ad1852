package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emberapp/ember-backend/internal/domain"
	"github.com/emberapp/ember-backend/internal/usecase/profile"
)

type AuthHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewAuthHandler(profileUseCase *profile.ProfileUseCase) *AuthHandler {
	return &AuthHandler{profileUseCase: profileUseCase}
}

// Signup handles POST /auth/signup
// @Summary Sign up
// @Description Create the session user from signup fields
// @Tags auth
// @Accept json
// @Produce json
// @Param request body profile.SignupRequest true "Signup data"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req profile.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	p, err := h.profileUseCase.Signup(&req)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExists) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "session already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to sign up"})
		return
	}

	c.JSON(http.StatusCreated, p)
}
