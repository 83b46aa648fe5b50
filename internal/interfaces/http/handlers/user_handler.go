package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"alvezinc.backend/internal/domain/entities"
	domainerrors "alvezinc.backend/internal/domain/errors"
	"alvezinc.backend/internal/interfaces/http/middleware"
	"alvezinc.backend/internal/interfaces/http/response"
)

type userService interface {
	UpdateProfile(ctx context.Context, userUUID uuid.UUID, input *entities.UpdateProfileInput) error
	GetProfile(ctx context.Context, userUUID uuid.UUID) (*entities.Profile, error)
}

// UserHandler handles profile endpoints for the authenticated user
type UserHandler struct {
	userUsecase userService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase userService) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// UpdateProfile applies a partial update to the caller's profile. The
// profile is addressed by the uuid claim of the bearer token, never by
// anything in the request body.
// PUT /api/v1/user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userUUID, ok := middleware.GetUserUUID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("user not authenticated"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.userUsecase.UpdateProfile(c.Request.Context(), userUUID, &input); err != nil {
		if errors.Is(err, domainerrors.ErrInvalidInput) {
			response.Error(c, domainerrors.BadRequest("no updatable fields in request"))
			return
		}
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetProfile returns the caller's profile
// GET /api/v1/user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userUUID, ok := middleware.GetUserUUID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("user not authenticated"))
		return
	}

	profile, err := h.userUsecase.GetProfile(c.Request.Context(), userUUID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"fullName": profile.FullName,
		"email":    profile.Email,
		"address":  profile.Address,
		"cp":       profile.CP,
	})
}
