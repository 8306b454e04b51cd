package favorite

// FavoriteRequest represents the input for favoriting a property.
type FavoriteRequest struct {
	PropertyID uint `json:"property_id" form:"property_id" binding:"required"`
}
