package tenant

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

// tenantSchema classifies the filterable and sortable fields of the tenant
// resource.
var tenantSchema = &query.Schema{
	Table: "tenants",
	Columns: map[string]string{
		"id":             "id",
		"name":           "name",
		"internal_code":  "internal_code",
		"cpf":            "cpf",
		"cnpj":           "cnpj",
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
		JoinTable:  "tenant_addresses",
		OwnerKey:   "tenant_id",
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
		JoinTable:  "tenant_contacts",
		OwnerKey:   "tenant_id",
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

// tenantRepository implements domain.TenantRepository using GORM.
type tenantRepository struct {
	db     *gorm.DB
	engine *query.Engine[domain.Tenant]
}

// NewTenantRepository creates a new TenantRepository backed by the given GORM database.
func NewTenantRepository(db *gorm.DB) domain.TenantRepository {
	return &tenantRepository{
		db: db,
		engine: &query.Engine[domain.Tenant]{
			Schema: tenantSchema,
			Preloads: []query.Preload{
				{Name: "Addresses", Args: []any{"deleted_at IS NULL"}},
				{Name: "Contacts", Args: []any{"deleted_at IS NULL"}},
			},
			SearchText: tenantSearchText,
			SortValue:  tenantSortValue,
		},
	}
}

func tenantSearchText(t *domain.Tenant) string {
	parts := []string{t.Name, t.InternalCode, t.CPF, t.CNPJ, t.Occupation, t.MaritalStatus}
	for _, a := range t.Addresses {
		parts = append(parts, a.Street, a.Number, a.District, a.City, a.State, a.ZipCode)
	}
	for _, c := range t.Contacts {
		parts = append(parts, c.Name, c.Phone, c.Email, c.Whatsapp)
	}
	return strings.Join(parts, " ")
}

func tenantSortValue(t *domain.Tenant, field string) string {
	switch field {
	case "id":
		return fmt.Sprintf("%012d", t.ID)
	case "name":
		return t.Name
	case "internal_code":
		return t.InternalCode
	case "cpf":
		return t.CPF
	case "cnpj":
		return t.CNPJ
	case "occupation":
		return t.Occupation
	case "marital_status":
		return t.MaritalStatus
	case "created_at":
		return t.CreatedAt.Format(time.RFC3339)
	case "updated_at":
		return t.UpdatedAt.Format(time.RFC3339)
	}
	if len(t.Addresses) > 0 {
		a := t.Addresses[0]
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
	if len(t.Contacts) > 0 {
		c := t.Contacts[0]
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

// Create inserts a new tenant with its address and contact rows atomically.
func (r *tenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(tenant).Error; err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// GetByID retrieves an active tenant with its active relations.
func (r *tenantRepository) GetByID(ctx context.Context, id uint) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.db.WithContext(ctx).
		Preload("Addresses", "deleted_at IS NULL").
		Preload("Contacts", "deleted_at IS NULL").
		Where("deleted_at IS NULL").
		First(&tenant, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &tenant, nil
}

// GetAnyByID retrieves a tenant regardless of its deleted state.
func (r *tenantRepository) GetAnyByID(ctx context.Context, id uint) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.db.WithContext(ctx).
		Preload("Addresses").
		Preload("Contacts").
		First(&tenant, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &tenant, nil
}

// List returns a filtered, sorted, paginated page of tenants.
func (r *tenantRepository) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Tenant], error) {
	result, err := r.engine.List(ctx, r.db, params)
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

// Update saves the tenant and replaces its address and contact associations.
func (r *tenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)
		if err := tx.Omit("Addresses", "Contacts").Save(tenant).Error; err != nil {
			return pkg.MapDBError(err)
		}
		if err := tx.Model(tenant).Association("Addresses").Replace(tenant.Addresses); err != nil {
			return pkg.MapDBError(err)
		}
		if err := tx.Model(tenant).Association("Contacts").Replace(tenant.Contacts); err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// SoftDelete marks the tenant and its joined address/contact rows deleted.
func (r *tenantRepository) SoftDelete(ctx context.Context, id uint) error {
	now := time.Now()
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)

		result := tx.Model(&domain.Tenant{}).
			Where("id = ? AND deleted_at IS NULL", id).
			Update("deleted_at", now)
		if result.Error != nil {
			return pkg.MapDBError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := pkg.SetDeletedThrough(tx, &domain.Address{}, "tenant_addresses", "tenant_id", "address_id", id, &now); err != nil {
			return pkg.MapDBError(err)
		}
		if err := pkg.SetDeletedThrough(tx, &domain.Contact{}, "tenant_contacts", "tenant_id", "contact_id", id, &now); err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// Restore clears the deleted mark on the tenant and its joined rows.
func (r *tenantRepository) Restore(ctx context.Context, id uint) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)

		result := tx.Model(&domain.Tenant{}).
			Where("id = ? AND deleted_at IS NOT NULL", id).
			Update("deleted_at", nil)
		if result.Error != nil {
			return pkg.MapDBError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := pkg.SetDeletedThrough(tx, &domain.Address{}, "tenant_addresses", "tenant_id", "address_id", id, nil); err != nil {
			return pkg.MapDBError(err)
		}
		if err := pkg.SetDeletedThrough(tx, &domain.Contact{}, "tenant_contacts", "tenant_id", "contact_id", id, nil); err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// ActiveExists reports whether an active tenant already holds value in column.
func (r *tenantRepository) ActiveExists(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	exists, err := pkg.ActiveExists(ctx, r.db, &domain.Tenant{}, column, value, excludeID)
	if err != nil {
		return false, pkg.MapDBError(err)
	}
	return exists, nil
}

// ContactSuggestions returns distinct contacts of active tenants matching term.
func (r *tenantRepository) ContactSuggestions(ctx context.Context, term string, limit int) ([]domain.ContactSuggestion, error) {
	if limit <= 0 {
		limit = suggestionLimit
	}
	pattern := "%" + strings.ToLower(term) + "%"

	var out []domain.ContactSuggestion
	err := r.db.WithContext(ctx).
		Table("contacts").
		Select("DISTINCT contacts.name, contacts.phone, contacts.email").
		Joins("JOIN tenant_contacts jt ON jt.contact_id = contacts.id").
		Joins("JOIN tenants t ON t.id = jt.tenant_id AND t.deleted_at IS NULL").
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
