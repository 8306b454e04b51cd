package domain

import "time"

// BaseModel is the common base struct for all primary domain models.
// It replaces gorm.Model so that soft deletion stays explicit: listing,
// uniqueness, and restore logic all reason about DeletedAt directly
// instead of relying on GORM's implicit soft-delete scoping.
type BaseModel struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// Deleted reports whether the record is currently soft-deleted.
func (m *BaseModel) Deleted() bool {
	return m.DeletedAt != nil
}

// SortDirective is a single sort request parsed from the query string.
type SortDirective struct {
	Field     string
	Direction string // "asc" or "desc"
}

// DateRange is a structured filter value for date fields. To is inclusive
// up to the end of the named day.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Filter is one field filter parsed from the query string. Range is non-nil
// when the raw value was a JSON object of the {from,to} shape; otherwise
// Value holds the raw string and the filter means "contains".
type Filter struct {
	Field string
	Value string
	Range *DateRange
}

// ListParams holds the normalized pagination, search, sorting, and filtering
// parameters for a list request.
type ListParams struct {
	Limit           int
	Page            int
	Search          string
	IncludeInactive bool
	Filters         []Filter
	Sorts           []SortDirective
}

// Offset returns the row offset implied by Page and Limit.
func (p ListParams) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// PageResult is the uniform list response envelope. List endpoints return it
// directly, unwrapped.
type PageResult[T any] struct {
	Data        []T   `json:"data"`
	Count       int64 `json:"count"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}
