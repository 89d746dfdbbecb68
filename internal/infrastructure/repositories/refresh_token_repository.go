package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kamalkharel2002/trackship/domain"
	"gorm.io/gorm"
)

// RefreshTokenRepositoryImpl implements domain.RefreshTokenRepository using
// GORM. Expired rows are never swept; every read filters on expires_at.
type RefreshTokenRepositoryImpl struct {
	db *gorm.DB
}

// DBRefreshToken represents the database model for RefreshToken
type DBRefreshToken struct {
	ID        string    `gorm:"column:token_id;primaryKey;size:36"`
	UserID    string    `gorm:"index;size:36"`
	TokenHash string    `gorm:"size:255"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBRefreshToken) TableName() string {
	return "refresh_tokens"
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db *gorm.DB) domain.RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{db: db}
}

// Create implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) Create(ctx context.Context, token *domain.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	dbToken := &DBRefreshToken{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(dbToken).Error; err != nil {
		return err
	}
	token.CreatedAt = dbToken.CreatedAt
	return nil
}

// FindActiveByUser implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) FindActiveByUser(ctx context.Context, userID string) ([]*domain.RefreshToken, error) {
	var dbTokens []DBRefreshToken
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Order("created_at DESC").
		Find(&dbTokens).Error
	if err != nil {
		return nil, err
	}

	tokens := make([]*domain.RefreshToken, 0, len(dbTokens))
	for i := range dbTokens {
		tokens = append(tokens, &domain.RefreshToken{
			ID:        dbTokens[i].ID,
			UserID:    dbTokens[i].UserID,
			TokenHash: dbTokens[i].TokenHash,
			ExpiresAt: dbTokens[i].ExpiresAt,
			CreatedAt: dbTokens[i].CreatedAt,
		})
	}
	return tokens, nil
}

// DeleteByID implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("token_id = ?", id).Delete(&DBRefreshToken{}).Error
}

// DeleteByUser implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&DBRefreshToken{}).Error
}
