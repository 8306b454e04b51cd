package owner

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

const suggestionLimit = 10

// ownerSchema classifies the filterable and sortable fields of the owner
// resource for the query engine and the filters endpoint.
var ownerSchema = &query.Schema{
	Table: "owners",
	Columns: map[string]string{
		"id":             "id",
		"name":           "name",
		"internal_code":  "internal_code",
		"cpf":            "cpf",
		"occupation":     "occupation",
		"marital_status": "marital_status",
		"created_at":     "created_at",
		"updated_at":     "updated_at",
	},
	Dates: map[string]bool{
		"created_at": true,
		"updated_at": true,
	},
	Address: &query.Relation{
		JoinTable:  "owner_addresses",
		OwnerKey:   "owner_id",
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
	Contact: &query.Relation{
		JoinTable:  "owner_contacts",
		OwnerKey:   "owner_id",
		RelatedKey: "contact_id",
		Table:      "contacts",
		Fields: map[string]string{
			"contact_name": "name",
			"phone":        "phone",
			"email":        "email",
			"whatsapp":     "whatsapp",
		},
	},
	DefaultLimit: 10,
}

// ownerRepository implements domain.OwnerRepository using GORM.
type ownerRepository struct {
	db     *gorm.DB
	engine *query.Engine[domain.Owner]
}

// NewOwnerRepository creates a new OwnerRepository backed by the given GORM database.
func NewOwnerRepository(db *gorm.DB) domain.OwnerRepository {
	return &ownerRepository{
		db: db,
		engine: &query.Engine[domain.Owner]{
			Schema: ownerSchema,
			Preloads: []query.Preload{
				{Name: "Addresses", Args: []any{"deleted_at IS NULL"}},
				{Name: "Contacts", Args: []any{"deleted_at IS NULL"}},
			},
			SearchText: ownerSearchText,
			SortValue:  ownerSortValue,
		},
	}
}

// ownerSearchText flattens an owner and its relations into the haystack
// scanned by free-text search.
func ownerSearchText(o *domain.Owner) string {
	parts := []string{o.Name, o.InternalCode, o.CPF, o.Occupation, o.MaritalStatus}
	for _, a := range o.Addresses {
		parts = append(parts, a.Street, a.Number, a.District, a.City, a.State, a.ZipCode)
	}
	for _, c := range o.Contacts {
		parts = append(parts, c.Name, c.Phone, c.Email, c.Whatsapp)
	}
	return strings.Join(parts, " ")
}

// ownerSortValue returns the comparable value of a field for in-memory
// sorting. Relation fields read from the first loaded address or contact.
func ownerSortValue(o *domain.Owner, field string) string {
	switch field {
	case "id":
		return fmt.Sprintf("%012d", o.ID)
	case "name":
		return o.Name
	case "internal_code":
		return o.InternalCode
	case "cpf":
		return o.CPF
	case "occupation":
		return o.Occupation
	case "marital_status":
		return o.MaritalStatus
	case "created_at":
		return o.CreatedAt.Format(time.RFC3339)
	case "updated_at":
		return o.UpdatedAt.Format(time.RFC3339)
	}
	if len(o.Addresses) > 0 {
		a := o.Addresses[0]
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
	if len(o.Contacts) > 0 {
		c := o.Contacts[0]
		switch field {
		case "contact_name":
			return c.Name
		case "phone":
			return c.Phone
		case "email":
			return c.Email
		case "whatsapp":
			return c.Whatsapp
		}
	}
	return ""
}

// Create inserts a new owner with its address and contact rows atomically.
func (r *ownerRepository) Create(ctx context.Context, owner *domain.Owner) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(owner).Error; err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// GetByID retrieves an active owner with its active relations.
func (r *ownerRepository) GetByID(ctx context.Context, id uint) (*domain.Owner, error) {
	var owner domain.Owner
	err := r.db.WithContext(ctx).
		Preload("Addresses", "deleted_at IS NULL").
		Preload("Contacts", "deleted_at IS NULL").
		Where("deleted_at IS NULL").
		First(&owner, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &owner, nil
}

// GetAnyByID retrieves an owner regardless of its deleted state.
func (r *ownerRepository) GetAnyByID(ctx context.Context, id uint) (*domain.Owner, error) {
	var owner domain.Owner
	err := r.db.WithContext(ctx).
		Preload("Addresses").
		Preload("Contacts").
		First(&owner, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &owner, nil
}

// List returns a filtered, sorted, paginated page of owners.
func (r *ownerRepository) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Owner], error) {
	result, err := r.engine.List(ctx, r.db, params)
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

// Update saves the owner and replaces its address and contact associations.
func (r *ownerRepository) Update(ctx context.Context, owner *domain.Owner) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)
		if err := tx.Omit("Addresses", "Contacts").Save(owner).Error; err != nil {
			return pkg.MapDBError(err)
		}
		if err := tx.Model(owner).Association("Addresses").Replace(owner.Addresses); err != nil {
			return pkg.MapDBError(err)
		}
		if err := tx.Model(owner).Association("Contacts").Replace(owner.Contacts); err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// SoftDelete marks the owner and its joined address/contact rows deleted.
func (r *ownerRepository) SoftDelete(ctx context.Context, id uint) error {
	now := time.Now()
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)

		result := tx.Model(&domain.Owner{}).
			Where("id = ? AND deleted_at IS NULL", id).
			Update("deleted_at", now)
		if result.Error != nil {
			return pkg.MapDBError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := pkg.SetDeletedThrough(tx, &domain.Address{}, "owner_addresses", "owner_id", "address_id", id, &now); err != nil {
			return pkg.MapDBError(err)
		}
		if err := pkg.SetDeletedThrough(tx, &domain.Contact{}, "owner_contacts", "owner_id", "contact_id", id, &now); err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// Restore clears the deleted mark on the owner and its joined rows.
func (r *ownerRepository) Restore(ctx context.Context, id uint) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)

		result := tx.Model(&domain.Owner{}).
			Where("id = ? AND deleted_at IS NOT NULL", id).
			Update("deleted_at", nil)
		if result.Error != nil {
			return pkg.MapDBError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := pkg.SetDeletedThrough(tx, &domain.Address{}, "owner_addresses", "owner_id", "address_id", id, nil); err != nil {
			return pkg.MapDBError(err)
		}
		if err := pkg.SetDeletedThrough(tx, &domain.Contact{}, "owner_contacts", "owner_id", "contact_id", id, nil); err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// ActiveExists reports whether an active owner already holds value in column.
func (r *ownerRepository) ActiveExists(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	exists, err := pkg.ActiveExists(ctx, r.db, &domain.Owner{}, column, value, excludeID)
	if err != nil {
		return false, pkg.MapDBError(err)
	}
	return exists, nil
}

// ContactSuggestions returns distinct contacts of active owners matching term.
func (r *ownerRepository) ContactSuggestions(ctx context.Context, term string, limit int) ([]domain.ContactSuggestion, error) {
	if limit <= 0 {
		limit = suggestionLimit
	}
	pattern := "%" + strings.ToLower(term) + "%"

	var out []domain.ContactSuggestion
	err := r.db.WithContext(ctx).
		Table("contacts").
		Select("DISTINCT contacts.name, contacts.phone, contacts.email").
		Joins("JOIN owner_contacts jt ON jt.contact_id = contacts.id").
		Joins("JOIN owners o ON o.id = jt.owner_id AND o.deleted_at IS NULL").
		Where("contacts.deleted_at IS NULL").
		Where("LOWER(contacts.name) LIKE ? OR LOWER(contacts.email) LIKE ? OR LOWER(contacts.phone) LIKE ?",
			pattern, pattern, pattern).
		Order("contacts.name").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return out, nil
}
