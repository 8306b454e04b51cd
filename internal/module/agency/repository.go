package agency

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

// agencySchema classifies the filterable and sortable fields of the agency
// resource.
var agencySchema = &query.Schema{
	Table: "agencies",
	Columns: map[string]string{
		"id":         "id",
		"name":       "name",
		"trade_name": "trade_name",
		"cnpj":       "cnpj",
		"created_at": "created_at",
		"updated_at": "updated_at",
	},
	Dates: map[string]bool{
		"created_at": true,
		"updated_at": true,
	},
	Address: &query.Relation{
		JoinTable:  "agency_addresses",
		OwnerKey:   "agency_id",
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
		JoinTable:  "agency_contacts",
		OwnerKey:   "agency_id",
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

// agencyRepository implements domain.AgencyRepository using GORM.
type agencyRepository struct {
	db     *gorm.DB
	engine *query.Engine[domain.Agency]
}

// NewAgencyRepository creates a new AgencyRepository backed by the given GORM database.
func NewAgencyRepository(db *gorm.DB) domain.AgencyRepository {
	return &agencyRepository{
		db: db,
		engine: &query.Engine[domain.Agency]{
			Schema: agencySchema,
			Preloads: []query.Preload{
				{Name: "Addresses", Args: []any{"deleted_at IS NULL"}},
				{Name: "Contacts", Args: []any{"deleted_at IS NULL"}},
			},
			SearchText: agencySearchText,
			SortValue:  agencySortValue,
		},
	}
}

func agencySearchText(a *domain.Agency) string {
	parts := []string{a.Name, a.TradeName, a.CNPJ}
	for _, addr := range a.Addresses {
		parts = append(parts, addr.Street, addr.Number, addr.District, addr.City, addr.State, addr.ZipCode)
	}
	for _, c := range a.Contacts {
		parts = append(parts, c.Name, c.Phone, c.Email, c.Whatsapp)
	}
	return strings.Join(parts, " ")
}

func agencySortValue(a *domain.Agency, field string) string {
	switch field {
	case "id":
		return fmt.Sprintf("%012d", a.ID)
	case "name":
		return a.Name
	case "trade_name":
		return a.TradeName
	case "cnpj":
		return a.CNPJ
	case "created_at":
		return a.CreatedAt.Format(time.RFC3339)
	case "updated_at":
		return a.UpdatedAt.Format(time.RFC3339)
	}
	if len(a.Addresses) > 0 {
		addr := a.Addresses[0]
		switch field {
		case "zip_code":
			return addr.ZipCode
		case "street":
			return addr.Street
		case "number":
			return addr.Number
		case "district":
			return addr.District
		case "city":
			return addr.City
		case "state":
			return addr.State
		}
	}
	if len(a.Contacts) > 0 {
		c := a.Contacts[0]
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

// Create inserts a new agency with its address and contact rows atomically.
func (r *agencyRepository) Create(ctx context.Context, agency *domain.Agency) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(agency).Error; err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// GetByID retrieves an active agency with its active relations.
func (r *agencyRepository) GetByID(ctx context.Context, id uint) (*domain.Agency, error) {
	var agency domain.Agency
	err := r.db.WithContext(ctx).
		Preload("Addresses", "deleted_at IS NULL").
		Preload("Contacts", "deleted_at IS NULL").
		Where("deleted_at IS NULL").
		First(&agency, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &agency, nil
}

// GetAnyByID retrieves an agency regardless of its deleted state.
func (r *agencyRepository) GetAnyByID(ctx context.Context, id uint) (*domain.Agency, error) {
	var agency domain.Agency
	err := r.db.WithContext(ctx).
		Preload("Addresses").
		Preload("Contacts").
		First(&agency, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &agency, nil
}

// List returns a filtered, sorted, paginated page of agencies.
func (r *agencyRepository) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Agency], error) {
	result, err := r.engine.List(ctx, r.db, params)
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

// Update saves the agency and replaces its address and contact associations.
func (r *agencyRepository) Update(ctx context.Context, agency *domain.Agency) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)
		if err := tx.Omit("Addresses", "Contacts").Save(agency).Error; err != nil {
			return pkg.MapDBError(err)
		}
		if err := tx.Model(agency).Association("Addresses").Replace(agency.Addresses); err != nil {
			return pkg.MapDBError(err)
		}
		if err := tx.Model(agency).Association("Contacts").Replace(agency.Contacts); err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// SoftDelete marks the agency and its joined address/contact rows deleted.
func (r *agencyRepository) SoftDelete(ctx context.Context, id uint) error {
	now := time.Now()
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)

		result := tx.Model(&domain.Agency{}).
			Where("id = ? AND deleted_at IS NULL", id).
			Update("deleted_at", now)
		if result.Error != nil {
			return pkg.MapDBError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := pkg.SetDeletedThrough(tx, &domain.Address{}, "agency_addresses", "agency_id", "address_id", id, &now); err != nil {
			return pkg.MapDBError(err)
		}
		if err := pkg.SetDeletedThrough(tx, &domain.Contact{}, "agency_contacts", "agency_id", "contact_id", id, &now); err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// Restore clears the deleted mark on the agency and its joined rows.
func (r *agencyRepository) Restore(ctx context.Context, id uint) error {
	return pkg.WithTx(r.db, func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)

		result := tx.Model(&domain.Agency{}).
			Where("id = ? AND deleted_at IS NOT NULL", id).
			Update("deleted_at", nil)
		if result.Error != nil {
			return pkg.MapDBError(result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := pkg.SetDeletedThrough(tx, &domain.Address{}, "agency_addresses", "agency_id", "address_id", id, nil); err != nil {
			return pkg.MapDBError(err)
		}
		if err := pkg.SetDeletedThrough(tx, &domain.Contact{}, "agency_contacts", "agency_id", "contact_id", id, nil); err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// ActiveExists reports whether an active agency already holds value in column.
func (r *agencyRepository) ActiveExists(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	exists, err := pkg.ActiveExists(ctx, r.db, &domain.Agency{}, column, value, excludeID)
	if err != nil {
		return false, pkg.MapDBError(err)
	}
	return exists, nil
}
