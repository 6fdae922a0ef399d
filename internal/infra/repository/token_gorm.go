package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// TokenGormStore keeps refresh token ids in the refresh_tokens table.
type TokenGormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewTokenGormStore(db *gorm.DB) *TokenGormStore {
	return &TokenGormStore{db: db, now: time.Now}
}

func hashJTI(jti string) string {
	sum := sha256.Sum256([]byte(jti))
	return hex.EncodeToString(sum[:])
}

func (s *TokenGormStore) Save(
	ctx context.Context,
	jti string,
	accountID uint,
	expiresAt time.Time,
) error {

	// expired rows of this account are dropped as new ones arrive
	if err := s.db.WithContext(ctx).
		Where("account_id = ? AND expires_at <= ?", accountID, s.now()).
		Delete(&models.RefreshToken{}).Error; err != nil {
		return err
	}

	return s.db.WithContext(ctx).Create(&models.RefreshToken{
		AccountID: accountID,
		TokenHash: hashJTI(jti),
		ExpiresAt: expiresAt,
	}).Error
}

func (s *TokenGormStore) Exists(ctx context.Context, jti string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("token_hash = ? AND expires_at > ?", hashJTI(jti), s.now()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *TokenGormStore) Revoke(ctx context.Context, jti string) error {
	return s.db.WithContext(ctx).
		Where("token_hash = ?", hashJTI(jti)).
		Delete(&models.RefreshToken{}).Error
}

var _ auth.TokenStore = (*TokenGormStore)(nil)
