package favorite

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/pkg"
)

// favoriteRepository implements domain.FavoriteRepository using GORM.
// Favorites are hard-deleted; they carry no deleted state of their own.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new FavoriteRepository backed by the given GORM database.
func NewFavoriteRepository(db *gorm.DB) domain.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create inserts a new favorite row.
func (r *favoriteRepository) Create(ctx context.Context, fav *domain.Favorite) error {
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a favorite row by ID.
func (r *favoriteRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Favorite{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser returns the user's favorites with their active properties.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	err := r.db.WithContext(ctx).
		Preload("Property", "deleted_at IS NULL").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return favorites, nil
}

// Find returns the favorite row linking userID to propertyID, if any.
func (r *favoriteRepository) Find(ctx context.Context, userID, propertyID uint) (*domain.Favorite, error) {
	var fav domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		First(&fav).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &fav, nil
}
