package domain

import "context"

// Tenant represents a lease tenant, either a person (CPF) or a company (CNPJ).
type Tenant struct {
	BaseModel
	Name          string    `gorm:"size:100;not null" json:"name"`
	InternalCode  string    `gorm:"size:30;index" json:"internal_code"`
	CPF           string    `gorm:"size:14;index" json:"cpf,omitempty"`
	CNPJ          string    `gorm:"size:18;index" json:"cnpj,omitempty"`
	Occupation    string    `gorm:"size:100" json:"occupation,omitempty"`
	MaritalStatus string    `gorm:"size:30" json:"marital_status,omitempty"`
	Addresses     []Address `gorm:"many2many:tenant_addresses" json:"addresses,omitempty"`
	Contacts      []Contact `gorm:"many2many:tenant_contacts" json:"contacts,omitempty"`
}

// TenantRepository defines the data access interface for tenants.
type TenantRepository interface {
	Create(ctx context.Context, tenant *Tenant) error
	GetByID(ctx context.Context, id uint) (*Tenant, error)
	GetAnyByID(ctx context.Context, id uint) (*Tenant, error)
	List(ctx context.Context, params ListParams) (*PageResult[Tenant], error)
	Update(ctx context.Context, tenant *Tenant) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
	ActiveExists(ctx context.Context, column, value string, excludeID uint) (bool, error)
	ContactSuggestions(ctx context.Context, term string, limit int) ([]ContactSuggestion, error)
}

// TenantService defines the business logic interface for tenants.
type TenantService interface {
	Create(ctx context.Context, tenant *Tenant) (*Tenant, error)
	Get(ctx context.Context, id uint) (*Tenant, error)
	List(ctx context.Context, params ListParams) (*PageResult[Tenant], error)
	Update(ctx context.Context, id uint, tenant *Tenant) (*Tenant, error)
	Delete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) (*Tenant, error)
	ContactSuggestions(ctx context.Context, term string) ([]ContactSuggestion, error)
}
