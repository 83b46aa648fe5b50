package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"alvezinc.backend/internal/domain/entities"
	domainerrors "alvezinc.backend/internal/domain/errors"
	"alvezinc.backend/internal/domain/repositories"
	"alvezinc.backend/pkg/crypto"
	"alvezinc.backend/pkg/jwt"
	"alvezinc.backend/pkg/logger"
	"alvezinc.backend/pkg/tasks"
)

// AccountUsecase handles account provisioning, authentication and
// profile maintenance
type AccountUsecase struct {
	userRepo       repositories.UserRepository
	activationRepo repositories.UserActivationRepository
	profileRepo    repositories.ProfileRepository
	mailer         repositories.MailDispatcher
	jwtService     *jwt.JWTService
	runner         *tasks.Runner
	bcryptCost     int
}

// NewAccountUsecase creates a new account usecase
func NewAccountUsecase(
	userRepo repositories.UserRepository,
	activationRepo repositories.UserActivationRepository,
	profileRepo repositories.ProfileRepository,
	mailer repositories.MailDispatcher,
	jwtService *jwt.JWTService,
	runner *tasks.Runner,
	bcryptCost int,
) *AccountUsecase {
	return &AccountUsecase{
		userRepo:       userRepo,
		activationRepo: activationRepo,
		profileRepo:    profileRepo,
		mailer:         mailer,
		jwtService:     jwtService,
		runner:         runner,
		bcryptCost:     bcryptCost,
	}
}

// Register provisions a new account. The identity insert is the
// durability boundary: once it succeeds the caller gets the new UUID
// and everything downstream (profile document, verification code,
// welcome email) runs detached, never failing the registration and
// never rolling the identity back.
func (u *AccountUsecase) Register(ctx context.Context, input *entities.CreateAccountInput) (uuid.UUID, error) {
	passwordHash, err := crypto.HashPassword(input.Password, u.bcryptCost)
	if err != nil {
		return uuid.Nil, err
	}

	// The UUID is generated here, not by the store: it is the only
	// identifier shared across the relational and document stores.
	userUUID := uuid.New()

	user := &entities.User{
		UUID:         userUUID,
		Email:        input.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return uuid.Nil, err
	}

	in := *input
	u.runner.Go("complete-registration", func(taskCtx context.Context) {
		u.completeRegistration(taskCtx, userUUID, &in)
	})

	return userUUID, nil
}

// completeRegistration runs the post-boundary provisioning stages.
// Stage failures are logged and swallowed, except that a failed code
// insert suppresses the email: no activation mail goes out without a
// persisted code behind it.
func (u *AccountUsecase) completeRegistration(ctx context.Context, userUUID uuid.UUID, input *entities.CreateAccountInput) {
	profile := &entities.Profile{
		UUID:     userUUID,
		FullName: input.FullName,
		Email:    input.Email,
		Address:  input.Address,
		CP:       input.CP,
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		logger.Error(ctx, "failed to create user profile",
			zap.String("uuid", userUUID.String()), zap.Error(err))
	}

	code, err := crypto.GenerateVerificationCode()
	if err != nil {
		logger.Error(ctx, "failed to generate verification code",
			zap.String("uuid", userUUID.String()), zap.Error(err))
		return
	}
	if err := u.activationRepo.Create(ctx, userUUID, code); err != nil {
		logger.Error(ctx, "failed to store verification code",
			zap.String("uuid", userUUID.String()), zap.Error(err))
		return
	}

	if err := u.mailer.SendActivationEmail(ctx, input.Email, code); err != nil {
		logger.Error(ctx, "failed to send activation email",
			zap.String("uuid", userUUID.String()), zap.Error(err))
	}
}

// Login verifies credentials and issues an access token. The outcomes
// are deliberately distinguishable: unknown email, unactivated account
// and bad password each map to their own error.
func (u *AccountUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if !user.IsActivated() {
		return nil, domainerrors.ErrNotActivated
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresIn, err := u.jwtService.GenerateAccessToken(user.UUID)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

// Activate redeems a verification code and marks the account active
func (u *AccountUsecase) Activate(ctx context.Context, code string) error {
	userUUID, err := u.activationRepo.Consume(ctx, code)
	if err != nil {
		return err
	}

	if err := u.userRepo.Activate(ctx, userUUID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			// Already activated: the code was valid, so treat the
			// redemption as done.
			return nil
		}
		return err
	}
	return nil
}

// UpdateProfile applies the allow-listed partial update to the
// caller's own profile. The UUID comes from the token claims, never
// from the request body.
func (u *AccountUsecase) UpdateProfile(ctx context.Context, userUUID uuid.UUID, input *entities.UpdateProfileInput) error {
	if input.IsEmpty() {
		return domainerrors.ErrInvalidInput
	}
	return u.profileRepo.Update(ctx, userUUID, input)
}

// GetProfile loads the caller's profile document
func (u *AccountUsecase) GetProfile(ctx context.Context, userUUID uuid.UUID) (*entities.Profile, error) {
	return u.profileRepo.GetByUUID(ctx, userUUID)
}
