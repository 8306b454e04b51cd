package pkg

import (
	"time"

	"gorm.io/gorm"
)

// SetDeletedThrough stamps (or clears, when deletedAt is nil) the deleted_at
// column of every row in model linked to owner row id through the named join
// table. Deleting or restoring a record cascades to its owned address and
// contact rows with this helper, keeping the record and its relations in the
// same lifecycle state.
func SetDeletedThrough(tx *gorm.DB, model any, joinTable, ownerKey, relatedKey string, id uint, deletedAt *time.Time) error {
	sub := tx.Session(&gorm.Session{NewDB: true}).
		Table(joinTable).
		Select(relatedKey).
		Where(ownerKey+" = ?", id)
	return tx.Model(model).Where("id IN (?)", sub).Update("deleted_at", deletedAt).Error
}
