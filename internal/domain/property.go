package domain

import "context"

// Property represents a managed real-estate unit.
type Property struct {
	BaseModel
	InternalCode string             `gorm:"size:30;index" json:"internal_code"`
	Title        string             `gorm:"size:150;not null" json:"title"`
	Description  string             `gorm:"size:1000" json:"description,omitempty"`
	Bedrooms     int                `json:"bedrooms"`
	Bathrooms    int                `json:"bathrooms"`
	GarageSpaces int                `json:"garage_spaces"`
	AreaM2       float64            `json:"area_m2"`
	TypeID       uint               `gorm:"index" json:"type_id"`
	Type         *PropertyType      `json:"type,omitempty"`
	OwnerID      uint               `gorm:"index" json:"owner_id"`
	Owner        *Owner             `json:"owner,omitempty"`
	AgencyID     uint               `gorm:"index" json:"agency_id,omitempty"`
	Agency       *Agency            `json:"agency,omitempty"`
	Addresses    []Address          `gorm:"many2many:property_addresses" json:"addresses,omitempty"`
	Values       []PropertyValue    `json:"values,omitempty"`
	Documents    []PropertyDocument `json:"documents,omitempty"`
}

// PropertyValue holds the monetary figures attached to a property. A property
// keeps a history of value rows; the most recent one is the current set.
type PropertyValue struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	PropertyID    uint    `gorm:"index" json:"property_id"`
	PurchaseValue float64 `json:"purchase_value"`
	RentalValue   float64 `json:"rental_value"`
	CondoFee      float64 `json:"condo_fee"`
	PropertyTax   float64 `json:"property_tax"`
}

// PropertyDocument is a stored file (deed, photo, floor plan) attached to a
// property. URL points into blob storage.
type PropertyDocument struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	PropertyID  uint   `gorm:"index" json:"property_id"`
	Name        string `gorm:"size:255" json:"name"`
	URL         string `gorm:"size:500" json:"url"`
	ContentType string `gorm:"size:100" json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// PropertyRepository defines the data access interface for properties.
type PropertyRepository interface {
	Create(ctx context.Context, property *Property) error
	GetByID(ctx context.Context, id uint) (*Property, error)
	GetAnyByID(ctx context.Context, id uint) (*Property, error)
	List(ctx context.Context, params ListParams) (*PageResult[Property], error)
	Update(ctx context.Context, property *Property) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
	ActiveExists(ctx context.Context, column, value string, excludeID uint) (bool, error)
	AddDocuments(ctx context.Context, propertyID uint, docs []PropertyDocument) error
}

// PropertyService defines the business logic interface for properties.
type PropertyService interface {
	Create(ctx context.Context, property *Property) (*Property, error)
	Get(ctx context.Context, id uint) (*Property, error)
	List(ctx context.Context, params ListParams) (*PageResult[Property], error)
	Update(ctx context.Context, id uint, property *Property) (*Property, error)
	Delete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) (*Property, error)
	AttachDocuments(ctx context.Context, propertyID uint, uploads []DocumentUpload) ([]PropertyDocument, []string, error)
}

// DocumentUpload is one file received on a multipart create/update request,
// pending upload to blob storage.
type DocumentUpload struct {
	Name        string
	ContentType string
	Data        []byte
}
