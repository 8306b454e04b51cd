package domain

import (
	"context"
	"time"
)

// Favorite links a user to a property they bookmarked. Unlike primary
// records, favorites are hard-deleted: unfavoriting removes the row.
type Favorite struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index:idx_fav_user_property" json:"user_id"`
	PropertyID uint      `gorm:"index:idx_fav_user_property" json:"property_id"`
	Property   *Property `json:"property,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// FavoriteStatus is the payload of the favorite-check endpoint.
type FavoriteStatus struct {
	Favorited bool `json:"favorited"`
	ID        uint `json:"id,omitempty"`
}

// FavoriteRepository defines the data access interface for favorites.
type FavoriteRepository interface {
	Create(ctx context.Context, fav *Favorite) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint) ([]Favorite, error)
	Find(ctx context.Context, userID, propertyID uint) (*Favorite, error)
}

// FavoriteService defines the business logic interface for favorites.
type FavoriteService interface {
	Favorite(ctx context.Context, userID, propertyID uint) (*Favorite, error)
	Unfavorite(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint) ([]Favorite, error)
	Check(ctx context.Context, userID, propertyID uint) (*FavoriteStatus, error)
}
