package favorite

import (
	"context"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
)

// favoriteService implements domain.FavoriteService.
type favoriteService struct {
	repo       domain.FavoriteRepository
	properties domain.PropertyRepository
}

// NewFavoriteService creates a new FavoriteService with the given repositories.
func NewFavoriteService(repo domain.FavoriteRepository, properties domain.PropertyRepository) domain.FavoriteService {
	return &favoriteService{repo: repo, properties: properties}
}

// Favorite bookmarks an active property for the user. Favoriting the same
// property twice is a conflict.
func (s *favoriteService) Favorite(ctx context.Context, userID, propertyID uint) (*domain.Favorite, error) {
	if _, err := s.properties.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}

	existing, err := s.repo.Find(ctx, userID, propertyID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewAppError(domain.CodeAlreadyExists, "property already favorited", nil)
	}

	fav := &domain.Favorite{UserID: userID, PropertyID: propertyID}
	if err := s.repo.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// Unfavorite removes a favorite by its ID.
func (s *favoriteService) Unfavorite(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ListByUser returns the user's favorites.
func (s *favoriteService) ListByUser(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Check reports whether the user has favorited the property and, if so, the
// favorite's ID for a later Unfavorite call.
func (s *favoriteService) Check(ctx context.Context, userID, propertyID uint) (*domain.FavoriteStatus, error) {
	fav, err := s.repo.Find(ctx, userID, propertyID)
	if err != nil {
		if domain.IsNotFound(err) {
			return &domain.FavoriteStatus{Favorited: false}, nil
		}
		return nil, err
	}
	return &domain.FavoriteStatus{Favorited: true, ID: fav.ID}, nil
}
