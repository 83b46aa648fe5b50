package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	domainerrors "alvezinc.backend/internal/domain/errors"
	"alvezinc.backend/internal/infrastructure/models"
)

// activationTTL is how long a verification code stays redeemable.
const activationTTL = 24 * time.Hour

// UserActivationRepository implements one-time verification code
// operations
type UserActivationRepository struct {
	db *gorm.DB
}

// NewUserActivationRepository creates a new user activation repository
func NewUserActivationRepository(db *gorm.DB) *UserActivationRepository {
	return &UserActivationRepository{db: db}
}

// Create persists a fresh verification code for the user. Earlier
// codes are left in place; the latest one is the one emailed.
func (r *UserActivationRepository) Create(ctx context.Context, userUUID uuid.UUID, code string) error {
	m := &models.UserActivation{
		UserUUID:  userUUID,
		Code:      code,
		ExpiresAt: time.Now().Add(activationTTL),
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// Consume redeems a verification code exactly once and returns the
// owning user's UUID. Expired and already-used codes are rejected.
func (r *UserActivationRepository) Consume(ctx context.Context, code string) (uuid.UUID, error) {
	var m models.UserActivation
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, domainerrors.ErrNotFound
		}
		return uuid.Nil, err
	}

	if m.ConsumedAt != nil {
		return uuid.Nil, domainerrors.ErrCodeConsumed
	}
	if time.Now().After(m.ExpiresAt) {
		return uuid.Nil, domainerrors.ErrCodeExpired
	}

	result := r.db.WithContext(ctx).
		Model(&models.UserActivation{}).
		Where("id = ? AND consumed_at IS NULL", m.ID).
		Update("consumed_at", time.Now())
	if result.Error != nil {
		return uuid.Nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Lost the race to a concurrent redemption.
		return uuid.Nil, domainerrors.ErrCodeConsumed
	}

	return m.UserUUID, nil
}
