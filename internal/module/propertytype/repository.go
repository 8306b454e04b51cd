package propertytype

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/pkg"
	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/query"
)

// propertyTypeSchema classifies the filterable and sortable fields of the
// property type resource. The larger default page size suits its use as a
// dropdown data source.
var propertyTypeSchema = &query.Schema{
	Table: "property_types",
	Columns: map[string]string{
		"id":          "id",
		"description": "description",
		"created_at":  "created_at",
		"updated_at":  "updated_at",
	},
	Dates: map[string]bool{
		"created_at": true,
		"updated_at": true,
	},
	DefaultLimit: 30,
}

// propertyTypeRepository implements domain.PropertyTypeRepository using GORM.
type propertyTypeRepository struct {
	db     *gorm.DB
	engine *query.Engine[domain.PropertyType]
}

// NewPropertyTypeRepository creates a new PropertyTypeRepository backed by the given GORM database.
func NewPropertyTypeRepository(db *gorm.DB) domain.PropertyTypeRepository {
	return &propertyTypeRepository{
		db: db,
		engine: &query.Engine[domain.PropertyType]{
			Schema:     propertyTypeSchema,
			SearchText: func(pt *domain.PropertyType) string { return pt.Description },
			SortValue:  propertyTypeSortValue,
		},
	}
}

func propertyTypeSortValue(pt *domain.PropertyType, field string) string {
	switch field {
	case "id":
		return fmt.Sprintf("%012d", pt.ID)
	case "description":
		return pt.Description
	case "created_at":
		return pt.CreatedAt.Format(time.RFC3339)
	case "updated_at":
		return pt.UpdatedAt.Format(time.RFC3339)
	}
	return ""
}

// Create inserts a new property type.
func (r *propertyTypeRepository) Create(ctx context.Context, pt *domain.PropertyType) error {
	if err := r.db.WithContext(ctx).Create(pt).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves an active property type.
func (r *propertyTypeRepository) GetByID(ctx context.Context, id uint) (*domain.PropertyType, error) {
	var pt domain.PropertyType
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		First(&pt, id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &pt, nil
}

// GetAnyByID retrieves a property type regardless of its deleted state.
func (r *propertyTypeRepository) GetAnyByID(ctx context.Context, id uint) (*domain.PropertyType, error) {
	var pt domain.PropertyType
	if err := r.db.WithContext(ctx).First(&pt, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &pt, nil
}

// List returns a filtered, sorted, paginated page of property types.
func (r *propertyTypeRepository) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.PropertyType], error) {
	result, err := r.engine.List(ctx, r.db, params)
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

// Update saves changes to an existing property type.
func (r *propertyTypeRepository) Update(ctx context.Context, pt *domain.PropertyType) error {
	if err := r.db.WithContext(ctx).Save(pt).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// SoftDelete marks the property type deleted. Property types own no address
// or contact rows, so there is nothing to cascade to.
func (r *propertyTypeRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&domain.PropertyType{}).
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

// Restore clears the deleted mark on the property type.
func (r *propertyTypeRepository) Restore(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&domain.PropertyType{}).
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

// ActiveExists reports whether an active property type already holds value in column.
func (r *propertyTypeRepository) ActiveExists(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	exists, err := pkg.ActiveExists(ctx, r.db, &domain.PropertyType{}, column, value, excludeID)
	if err != nil {
		return false, pkg.MapDBError(err)
	}
	return exists, nil
}
