package domain

import "context"

// PropertyType classifies properties (house, apartment, commercial unit, ...).
type PropertyType struct {
	BaseModel
	Description string `gorm:"size:100;not null" json:"description"`
}

// PropertyTypeRepository defines the data access interface for property types.
type PropertyTypeRepository interface {
	Create(ctx context.Context, pt *PropertyType) error
	GetByID(ctx context.Context, id uint) (*PropertyType, error)
	GetAnyByID(ctx context.Context, id uint) (*PropertyType, error)
	List(ctx context.Context, params ListParams) (*PageResult[PropertyType], error)
	Update(ctx context.Context, pt *PropertyType) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
	ActiveExists(ctx context.Context, column, value string, excludeID uint) (bool, error)
}

// PropertyTypeService defines the business logic interface for property types.
type PropertyTypeService interface {
	Create(ctx context.Context, pt *PropertyType) (*PropertyType, error)
	Get(ctx context.Context, id uint) (*PropertyType, error)
	List(ctx context.Context, params ListParams) (*PageResult[PropertyType], error)
	Update(ctx context.Context, id uint, pt *PropertyType) (*PropertyType, error)
	Delete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) (*PropertyType, error)
}
