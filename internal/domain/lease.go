package domain

import (
	"context"
	"time"
)

// Lease represents a rental contract between a tenant and a property.
type Lease struct {
	BaseModel
	ContractNumber string    `gorm:"size:30;index" json:"contract_number"`
	PropertyID     uint      `gorm:"index" json:"property_id"`
	Property       *Property `json:"property,omitempty"`
	TenantID       uint      `gorm:"index" json:"tenant_id"`
	Tenant         *Tenant   `json:"tenant,omitempty"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	MonthlyRent    float64   `json:"monthly_rent"`
	DueDay         int       `json:"due_day"`
}

// LeaseRepository defines the data access interface for leases.
type LeaseRepository interface {
	Create(ctx context.Context, lease *Lease) error
	GetByID(ctx context.Context, id uint) (*Lease, error)
	GetAnyByID(ctx context.Context, id uint) (*Lease, error)
	List(ctx context.Context, params ListParams) (*PageResult[Lease], error)
	Update(ctx context.Context, lease *Lease) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
	ActiveExists(ctx context.Context, column, value string, excludeID uint) (bool, error)
}

// LeaseService defines the business logic interface for leases.
type LeaseService interface {
	Create(ctx context.Context, lease *Lease) (*Lease, error)
	Get(ctx context.Context, id uint) (*Lease, error)
	List(ctx context.Context, params ListParams) (*PageResult[Lease], error)
	Update(ctx context.Context, id uint, lease *Lease) (*Lease, error)
	Delete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) (*Lease, error)
}
