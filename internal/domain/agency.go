package domain

import "context"

// Agency represents a real-estate agency.
type Agency struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	TradeName string    `gorm:"size:100" json:"trade_name"`
	CNPJ      string    `gorm:"size:18;index" json:"cnpj"`
	Addresses []Address `gorm:"many2many:agency_addresses" json:"addresses,omitempty"`
	Contacts  []Contact `gorm:"many2many:agency_contacts" json:"contacts,omitempty"`
}

// AgencyRepository defines the data access interface for agencies.
type AgencyRepository interface {
	Create(ctx context.Context, agency *Agency) error
	GetByID(ctx context.Context, id uint) (*Agency, error)
	GetAnyByID(ctx context.Context, id uint) (*Agency, error)
	List(ctx context.Context, params ListParams) (*PageResult[Agency], error)
	Update(ctx context.Context, agency *Agency) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
	ActiveExists(ctx context.Context, column, value string, excludeID uint) (bool, error)
}

// AgencyService defines the business logic interface for agencies.
type AgencyService interface {
	Create(ctx context.Context, agency *Agency) (*Agency, error)
	Get(ctx context.Context, id uint) (*Agency, error)
	List(ctx context.Context, params ListParams) (*PageResult[Agency], error)
	Update(ctx context.Context, id uint, agency *Agency) (*Agency, error)
	Delete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) (*Agency, error)
}
