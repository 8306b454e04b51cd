package pkg

import (
	"context"

	"gorm.io/gorm"
)

// ActiveExists reports whether an active (not soft-deleted) row of model has
// the given value in column, optionally excluding one row by id. It backs
// the natural-key uniqueness checks: soft-deleted rows never block reuse of
// a CPF, CNPJ, contract number, or internal code.
func ActiveExists(ctx context.Context, db *gorm.DB, model any, column, value string, excludeID uint) (bool, error) {
	q := db.WithContext(ctx).Model(model).
		Where(column+" = ? AND deleted_at IS NULL", value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
