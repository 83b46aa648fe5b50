package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"alvezinc.backend/internal/domain/entities"
	domainerrors "alvezinc.backend/internal/domain/errors"
	"alvezinc.backend/internal/interfaces/http/response"
)

type accountService interface {
	Register(ctx context.Context, input *entities.CreateAccountInput) (uuid.UUID, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	Activate(ctx context.Context, code string) error
}

// AccountHandler handles account provisioning and authentication endpoints
type AccountHandler struct {
	accountUsecase accountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUsecase accountService) *AccountHandler {
	return &AccountHandler{accountUsecase: accountUsecase}
}

// Register provisions a new account. The response is sent as soon as
// the identity record is durable; profile and mail work continue in
// the background.
// POST /api/v1/account
func (h *AccountHandler) Register(c *gin.Context) {
	var input entities.CreateAccountInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if _, err := h.accountUsecase.Register(c.Request.Context(), &input); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.Conflict("email already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Login authenticates a user and issues an access token
// POST /api/v1/account/login
func (h *AccountHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.accountUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("no account for that email"))
		case errors.Is(err, domainerrors.ErrNotActivated):
			response.Error(c, domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeNotActivated, "account not activated", err))
		case errors.Is(err, domainerrors.ErrInvalidCredentials):
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "invalid email or password", err))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"accessToken": authResponse.AccessToken,
		"expiresIn":   authResponse.ExpiresIn,
	})
}

// Activate consumes an emailed verification code
// GET /api/v1/account/activate?verification_code=<code>
func (h *AccountHandler) Activate(c *gin.Context) {
	code := c.Query("verification_code")
	if code == "" {
		response.Error(c, domainerrors.BadRequest("verification_code is required"))
		return
	}

	if err := h.accountUsecase.Activate(c.Request.Context(), code); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
