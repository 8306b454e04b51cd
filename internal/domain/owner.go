package domain

import "context"

// Owner represents a property owner.
type Owner struct {
	BaseModel
	Name          string    `gorm:"size:100;not null" json:"name"`
	InternalCode  string    `gorm:"size:30;index" json:"internal_code"`
	CPF           string    `gorm:"size:14;index" json:"cpf"`
	Occupation    string    `gorm:"size:100" json:"occupation"`
	MaritalStatus string    `gorm:"size:30" json:"marital_status"`
	Addresses     []Address `gorm:"many2many:owner_addresses" json:"addresses,omitempty"`
	Contacts      []Contact `gorm:"many2many:owner_contacts" json:"contacts,omitempty"`
}

// OwnerRepository defines the data access interface for owners.
type OwnerRepository interface {
	Create(ctx context.Context, owner *Owner) error
	GetByID(ctx context.Context, id uint) (*Owner, error)
	GetAnyByID(ctx context.Context, id uint) (*Owner, error)
	List(ctx context.Context, params ListParams) (*PageResult[Owner], error)
	Update(ctx context.Context, owner *Owner) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
	ActiveExists(ctx context.Context, column, value string, excludeID uint) (bool, error)
	ContactSuggestions(ctx context.Context, term string, limit int) ([]ContactSuggestion, error)
}

// OwnerService defines the business logic interface for owners.
type OwnerService interface {
	Create(ctx context.Context, owner *Owner) (*Owner, error)
	Get(ctx context.Context, id uint) (*Owner, error)
	List(ctx context.Context, params ListParams) (*PageResult[Owner], error)
	Update(ctx context.Context, id uint, owner *Owner) (*Owner, error)
	Delete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) (*Owner, error)
	ContactSuggestions(ctx context.Context, term string) ([]ContactSuggestion, error)
}
