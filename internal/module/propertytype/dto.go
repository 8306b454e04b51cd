package propertytype

import "github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"

// PropertyTypeRequest represents the input for creating or updating a
// property type.
type PropertyTypeRequest struct {
	Description string `json:"description" form:"description" binding:"required,min=2,max=100"`
}

func (r *PropertyTypeRequest) toModel() *domain.PropertyType {
	return &domain.PropertyType{Description: r.Description}
}
