package property

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/pkg"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/query"
)

// propertySchema classifies the filterable and sortable fields of the
// property resource.
var propertySchema = &query.Schema{
	Table: "properties",
	Columns: map[string]string{
		"id":            "id",
		"internal_code": "internal_code",
		"title":         "title",
		"description":   "description",
		"bedrooms":      "bedrooms",
		"bathrooms":     "bathrooms",
		"garage_spaces": "garage_spaces",
		"area_m2":       "area_m2",
		"type_id":       "type_id",
		"owner_id":      "owner_id",
		"agency_id":     "agency_id",
		"created_at":    "created_at",
		"updated_at":    "updated_at",
	},
	Dates: map[string]bool{
		"created_at": true,
		"updated_at": true,
	},
	Address: &query.Relation{
		JoinTable:  "property_addresses",
		OwnerKey:   "property_id",
		RelatedKey: "address_id",
		Table:      "addresses",
		Fields: map[string]string{
			"zip_code": "zip_code",
			"street":   "street",
			"number":   "number",
			"district": "district",
			"city":     "city",
			"state":    "state",
		},
	},
	DefaultLimit: 10,
}

// propertyRepository implements domain.PropertyRepository using GORM.
type propertyRepository struct {
	db     *gorm.DB
	engine *query.Engine[domain.Property]
}

// NewPropertyRepository creates a new PropertyRepository backed by the given GORM database.
func NewPropertyRepository(db *gorm.DB) domain.PropertyRepository {
	return &propertyRepository{
		db: db,
		engine: &query.Engine[domain.Property]{
			Schema: propertySchema,
			Preloads: []query.Preload{
				{Name: "Type"},
				{Name: "Owner"},
				{Name: "Agency"},
				{Name: "Addresses", Args: []any{"deleted_at IS NULL"}},
				{Name: "Values"},
				{Name: "Documents"},
			},
			SearchText: propertySearchText,
			SortValue:  propertySortValue,
		},
	}
}

// propertySearchText includes the preloaded type, owner, and agency so
// free-text search spans the property's related records.
func propertySearchText(p *domain.Property) string {
	parts := []string{p.InternalCode, p.Title, p.Description}
	if p.Type != nil {
		parts = append(parts, p.Type.Description)
	}
	if p.Owner != nil {
		parts = append(parts, p.Owner.Name)
	}
	if p.Agency != nil {
		parts = append(parts, p.Agency.Name, p.Agency.TradeName)
	}
	for _, a := range p.Addresses {
		parts = append(parts, a.Street, a.Number, a.District, a.City, a.State, a.ZipCode)
	}
	return strings.Join(parts, " ")
}

func propertySortValue(p *domain.Property, field string) string {
	switch field {
	case "id":
		return fmt.Sprintf("%012d", p.ID)
	case "internal_code":
		return p.InternalCode
	case "title":
		return p.Title
	case "description":
		return p.Description
	case "bedrooms":
		return fmt.Sprintf("%04d", p.Bedrooms)
	case "bathrooms":
		return fmt.Sprintf("%04d", p.Bathrooms)
	case "garage_spaces":
		return fmt.Sprintf("%04d", p.GarageSpaces)
	case "area_m2":
		return fmt.Sprintf("%015.2f", p.AreaM2)
	case "type_id":
		return fmt.Sprintf("%012d", p.TypeID)
	case "owner_id":
		return fmt.Sprintf("%012d", p.OwnerID)
	case "agency_id":
		return fmt.Sprintf("%012d", p.AgencyID)
	case "created_at":
		return p.CreatedAt.Format(time.RFC3339)
	case "updated_at":
		return p.UpdatedAt.Format(time.RFC3339)
	}
	if len(p.Addresses) > 0 {
		a := p.Addresses[0]
		switch field {
		case "zip_code":
			return a.ZipCode
		case "street":
			return a.Street
		case "number":
			return a.Number
		case "district":
			return a.District
		case "city":
			return a.City
		case "state":
			return a.State
		}
	}
	return ""
}

// Create inserts a new property with its address and value rows atomically.
func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		err := tx.WithContext(ctx).
			Omit("Type", "Owner", "Agency").
			Create(property).Error
		if err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// GetByID retrieves an active property with its relations.
func (r *propertyRepository) GetByID(ctx context.Context, id uint) (*domain.Property, error) {
	var property domain.Property
	err := r.db.WithContext(ctx).
		Preload("Type").
		Preload("Owner").
		Preload("Agency").
		Preload("Addresses", "deleted_at IS NULL").
		Preload("Values").
		Preload("Documents").
		Where("deleted_at IS NULL").
		First(&property, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &property, nil
}

// GetAnyByID retrieves a property regardless of its deleted state.
func (r *propertyRepository) GetAnyByID(ctx context.Context, id uint) (*domain.Property, error) {
	var property domain.Property
	err := r.db.WithContext(ctx).
		Preload("Type").
		Preload("Owner").
		Preload("Agency").
		Preload("Addresses").
		Preload("Values").
		Preload("Documents").
		First(&property, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &property, nil
}

// List returns a filtered, sorted, paginated page of properties.
func (r *propertyRepository) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Property], error) {
	result, err := r.engine.List(ctx, r.db, params)
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

// Update saves the property, replaces its addresses, and appends any new
// value rows. Existing value rows are never rewritten; the value list is a
// history.
func (r *propertyRepository) Update(ctx context.Context, property *domain.Property) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)

		err := tx.Omit("Type", "Owner", "Agency", "Addresses", "Values", "Documents").
			Save(property).Error
		if err != nil {
			return pkg.MapDBError(err)
		}

		if err := tx.Model(property).Association("Addresses").Replace(property.Addresses); err != nil {
			return pkg.MapDBError(err)
		}

		for i := range property.Values {
			if property.Values[i].ID != 0 {
				continue
			}
			property.Values[i].PropertyID = property.ID
			if err := tx.Create(&property.Values[i]).Error; err != nil {
				return pkg.MapDBError(err)
			}
		}
		return nil
	})
}

// SoftDelete marks the property and its joined address rows deleted.
func (r *propertyRepository) SoftDelete(ctx context.Context, id uint) error {
	now := time.Now()
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)

		result := tx.Model(&domain.Property{}).
			Where("id = ? AND deleted_at IS NULL", id).
			Update("deleted_at", now)
		if result.Error != nil {
			return pkg.MapDBError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := pkg.SetDeletedThrough(tx, &domain.Address{}, "property_addresses", "property_id", "address_id", id, &now); err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// Restore clears the deleted mark on the property and its joined rows.
func (r *propertyRepository) Restore(ctx context.Context, id uint) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)

		result := tx.Model(&domain.Property{}).
			Where("id = ? AND deleted_at IS NOT NULL", id).
			Update("deleted_at", nil)
		if result.Error != nil {
			return pkg.MapDBError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := pkg.SetDeletedThrough(tx, &domain.Address{}, "property_addresses", "property_id", "address_id", id, nil); err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// ActiveExists reports whether an active property already holds value in column.
func (r *propertyRepository) ActiveExists(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	exists, err := pkg.ActiveExists(ctx, r.db, &domain.Property{}, column, value, excludeID)
	if err != nil {
		return false, pkg.MapDBError(err)
	}
	return exists, nil
}

// AddDocuments inserts document rows for the given property.
func (r *propertyRepository) AddDocuments(ctx context.Context, propertyID uint, docs []domain.PropertyDocument) error {
	if len(docs) == 0 {
		return nil
	}
	for i := range docs {
		docs[i].PropertyID = propertyID
	}
	if err := r.db.WithContext(ctx).Create(&docs).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}
