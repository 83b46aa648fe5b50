package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"alvezinc.backend/internal/domain/entities"
	domainerrors "alvezinc.backend/internal/domain/errors"
	"alvezinc.backend/internal/infrastructure/models"
)

// UserRepository implements identity data operations over the
// relational store
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the identity row. A duplicate email surfaces as
// ErrAlreadyExists so the caller can report a conflict.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		UUID:         user.UUID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKeyError(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	user.ID = m.ID
	return nil
}

// GetByEmail gets a user by exact email match
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// GetByUUID gets a user by its cross-store identifier
func (r *UserRepository) GetByUUID(ctx context.Context, userUUID uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("uuid = ?", userUUID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// Activate stamps activated_at for a not-yet-activated account
func (r *UserRepository) Activate(ctx context.Context, userUUID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("uuid = ? AND activated_at IS NULL", userUUID).
		Update("activated_at", time.Now())

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		UUID:         m.UUID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		ActivatedAt:  null.TimeFromPtr(m.ActivatedAt),
	}
}

// isDuplicateKeyError matches unique-constraint violations across the
// Postgres and sqlite (test) drivers.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
