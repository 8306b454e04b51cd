package lease

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

// leaseSchema classifies the filterable and sortable fields of the lease
// resource.
var leaseSchema = &query.Schema{
	Table: "leases",
	Columns: map[string]string{
		"id":              "id",
		"contract_number": "contract_number",
		"property_id":     "property_id",
		"tenant_id":       "tenant_id",
		"start_date":      "start_date",
		"end_date":        "end_date",
		"due_day":         "due_day",
		"created_at":      "created_at",
		"updated_at":      "updated_at",
	},
	Dates: map[string]bool{
		"start_date": true,
		"end_date":   true,
		"created_at": true,
		"updated_at": true,
	},
	DefaultLimit: 10,
}

// leaseRepository implements domain.LeaseRepository using GORM.
type leaseRepository struct {
	db     *gorm.DB
	engine *query.Engine[domain.Lease]
}

// NewLeaseRepository creates a new LeaseRepository backed by the given GORM database.
func NewLeaseRepository(db *gorm.DB) domain.LeaseRepository {
	return &leaseRepository{
		db: db,
		engine: &query.Engine[domain.Lease]{
			Schema: leaseSchema,
			Preloads: []query.Preload{
				{Name: "Property"},
				{Name: "Tenant"},
			},
			SearchText: leaseSearchText,
			SortValue:  leaseSortValue,
		},
	}
}

// leaseSearchText includes the preloaded property title and tenant name, so
// free-text search spans the lease's related records.
func leaseSearchText(l *domain.Lease) string {
	parts := []string{l.ContractNumber}
	if l.Property != nil {
		parts = append(parts, l.Property.Title, l.Property.InternalCode)
	}
	if l.Tenant != nil {
		parts = append(parts, l.Tenant.Name, l.Tenant.CPF, l.Tenant.CNPJ)
	}
	return strings.Join(parts, " ")
}

func leaseSortValue(l *domain.Lease, field string) string {
	switch field {
	case "id":
		return fmt.Sprintf("%012d", l.ID)
	case "contract_number":
		return l.ContractNumber
	case "property_id":
		return fmt.Sprintf("%012d", l.PropertyID)
	case "tenant_id":
		return fmt.Sprintf("%012d", l.TenantID)
	case "start_date":
		return l.StartDate.Format(time.RFC3339)
	case "end_date":
		return l.EndDate.Format(time.RFC3339)
	case "due_day":
		return fmt.Sprintf("%02d", l.DueDay)
	case "created_at":
		return l.CreatedAt.Format(time.RFC3339)
	case "updated_at":
		return l.UpdatedAt.Format(time.RFC3339)
	}
	return ""
}

// Create inserts a new lease.
func (r *leaseRepository) Create(ctx context.Context, lease *domain.Lease) error {
	if err := r.db.WithContext(ctx).Create(lease).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves an active lease with its property and tenant.
func (r *leaseRepository) GetByID(ctx context.Context, id uint) (*domain.Lease, error) {
	var lease domain.Lease
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Tenant").
		Where("deleted_at IS NULL").
		First(&lease, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &lease, nil
}

// GetAnyByID retrieves a lease regardless of its deleted state.
func (r *leaseRepository) GetAnyByID(ctx context.Context, id uint) (*domain.Lease, error) {
	var lease domain.Lease
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Tenant").
		First(&lease, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &lease, nil
}

// List returns a filtered, sorted, paginated page of leases.
func (r *leaseRepository) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Lease], error) {
	result, err := r.engine.List(ctx, r.db, params)
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

// Update saves changes to an existing lease.
func (r *leaseRepository) Update(ctx context.Context, lease *domain.Lease) error {
	if err := r.db.WithContext(ctx).Omit("Property", "Tenant").Save(lease).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// SoftDelete marks the lease deleted. Leases own no address or contact rows.
func (r *leaseRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&domain.Lease{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Restore clears the deleted mark on the lease.
func (r *leaseRepository) Restore(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&domain.Lease{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ActiveExists reports whether an active lease already holds value in column.
func (r *leaseRepository) ActiveExists(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	exists, err := pkg.ActiveExists(ctx, r.db, &domain.Lease{}, column, value, excludeID)
	if err != nil {
		return false, pkg.MapDBError(err)
	}
	return exists, nil
}
