package query

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
)

const dateLayout = "2006-01-02"

// applyDeletedState excludes soft-deleted rows unless the request asked for
// them.
func (s *Schema) applyDeletedState(db *gorm.DB, includeInactive bool) *gorm.DB {
	if includeInactive {
		return db
	}
	return db.Where(s.Table + ".deleted_at IS NULL")
}

// applyDirectFilters compiles filters on the resource's own columns.
// Date-classified fields become half-open range predicates; everything else
// becomes a case-insensitive substring match. Unknown fields are ignored.
func (s *Schema) applyDirectFilters(db *gorm.DB, filters []domain.Filter) *gorm.DB {
	for _, f := range filters {
		col, ok := s.Columns[f.Field]
		if !ok {
			continue
		}
		qualified := s.Table + "." + col

		if s.Dates[f.Field] {
			from, to, ok := dateBounds(f)
			if !ok {
				continue
			}
			if !from.IsZero() {
				db = db.Where(qualified+" >= ?", from)
			}
			if !to.IsZero() {
				db = db.Where(qualified+" < ?", to)
			}
			continue
		}

		db = db.Where("LOWER("+qualified+") LIKE ?", containsPattern(f.Value))
	}
	return db
}

// applyRelationFilters compiles address/contact filters into one accumulated
// EXISTS predicate per relation, so several filters on the same relation must
// all match within a single related row.
func (s *Schema) applyRelationFilters(db *gorm.DB, filters []domain.Filter) *gorm.DB {
	for _, rel := range []*Relation{s.Address, s.Contact} {
		if rel == nil {
			continue
		}

		var conds []string
		var args []any
		for _, f := range filters {
			col, ok := rel.Fields[f.Field]
			if !ok {
				continue
			}
			conds = append(conds, "LOWER(rel."+col+") LIKE ?")
			args = append(args, containsPattern(f.Value))
		}
		if len(conds) == 0 {
			continue
		}

		sql := "EXISTS (SELECT 1 FROM " + rel.JoinTable + " jt" +
			" JOIN " + rel.Table + " rel ON rel.id = jt." + rel.RelatedKey +
			" WHERE jt." + rel.OwnerKey + " = " + s.Table + ".id" +
			" AND rel.deleted_at IS NULL" +
			" AND " + strings.Join(conds, " AND ") + ")"
		db = db.Where(sql, args...)
	}
	return db
}

func containsPattern(value string) string {
	return "%" + strings.ToLower(value) + "%"
}

// dateBounds resolves a date filter into [from, to) bounds. A single date
// expands to that whole day; a {from,to} range is inclusive through the end
// of the "to" day. Either bound may be zero when open.
func dateBounds(f domain.Filter) (from, to time.Time, ok bool) {
	if f.Range != nil {
		if f.Range.From != "" {
			day, parsed := parseDay(f.Range.From)
			if !parsed {
				return time.Time{}, time.Time{}, false
			}
			from = day
		}
		if f.Range.To != "" {
			day, parsed := parseDay(f.Range.To)
			if !parsed {
				return time.Time{}, time.Time{}, false
			}
			to = day.AddDate(0, 0, 1)
		}
		return from, to, from != (time.Time{}) || to != (time.Time{})
	}

	day, parsed := parseDay(f.Value)
	if !parsed {
		return time.Time{}, time.Time{}, false
	}
	return day, day.AddDate(0, 0, 1), true
}

func parseDay(value string) (time.Time, bool) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), true
	}
	return time.Time{}, false
}
