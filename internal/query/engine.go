// Package query implements the shared query-translation engine: it turns
// the raw query string of a list request into either a native database
// query (filters, ORDER BY, LIMIT/OFFSET pushed to the ORM) or an in-memory
// search/sort fallback for requests the database cannot express: free-text
// search across joined rows and sorting by relation-spanning fields.
//
// Every listable resource parameterizes one Engine with its Schema instead
// of reimplementing translation per resource.
package query

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
)

// Preload names a GORM association to eager-load, with optional conditions.
type Preload struct {
	Name string
	Args []any
}

// Engine translates list requests for one resource type.
//
// SearchText flattens a row into the text searched by free-text queries
// (direct fields plus the first related address and contact). SortValue
// returns the row's comparable value for a field, used by the in-memory
// sort path.
type Engine[T any] struct {
	Schema     *Schema
	Preloads   []Preload
	SearchText func(*T) string
	SortValue  func(*T, string) string
}

// List runs the request on the native path when the database can express it,
// and otherwise falls back to fetching the candidate set and filtering,
// sorting, and paginating in memory.
//
// Count semantics differ between the two paths: the native path counts all
// predicate-matching rows in the database before pagination, while the
// fallback counts the in-memory filtered set. The fallback never pushes the
// search predicate into SQL, so the two paths are not interchangeable for
// the same logical query.
func (e *Engine[T]) List(ctx context.Context, db *gorm.DB, params domain.ListParams) (*domain.PageResult[T], error) {
	if params.Limit < 1 {
		params.Limit = e.Schema.DefaultLimit
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}
	if params.Page < 1 {
		params.Page = defaultPage
	}

	primary := e.primarySort(params)
	if params.Search != "" || e.isRelationField(primary.Field) {
		return e.listInMemory(ctx, db, params, primary)
	}
	return e.listNative(ctx, db, params, primary)
}

// primarySort returns the first recognized sort directive; by convention
// only one directive is honored per request. Defaults to created_at desc.
func (e *Engine[T]) primarySort(params domain.ListParams) domain.SortDirective {
	for _, s := range params.Sorts {
		if _, ok := e.Schema.Classify(s.Field); ok {
			return s
		}
	}
	return domain.SortDirective{Field: "created_at", Direction: "desc"}
}

func (e *Engine[T]) isRelationField(field string) bool {
	class, ok := e.Schema.Classify(field)
	return ok && class != ClassDirect
}

// listNative delegates filtering, ordering, and pagination to the database.
// The total count runs concurrently with the page fetch.
func (e *Engine[T]) listNative(ctx context.Context, db *gorm.DB, params domain.ListParams, primary domain.SortDirective) (*domain.PageResult[T], error) {
	predicate := func(tx *gorm.DB) *gorm.DB {
		tx = e.Schema.applyDeletedState(tx, params.IncludeInactive)
		tx = e.Schema.applyDirectFilters(tx, params.Filters)
		return e.Schema.applyRelationFilters(tx, params.Filters)
	}

	g, gctx := errgroup.WithContext(ctx)

	var total int64
	g.Go(func() error {
		return predicate(db.WithContext(gctx).Model(new(T))).Count(&total).Error
	})

	var rows []T
	g.Go(func() error {
		tx := predicate(db.WithContext(gctx).Model(new(T)))
		tx = e.applyPreloads(tx)
		tx = tx.Order(e.orderExpr(primary)).
			Limit(params.Limit).
			Offset(params.Offset())
		return tx.Find(&rows).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newPageResult(rows, total, params), nil
}

// listInMemory fetches every row matching the deleted-state and direct
// filters, then searches, sorts, and paginates in application memory.
// Relation filters are not pushed down on this path; search subsumes them.
func (e *Engine[T]) listInMemory(ctx context.Context, db *gorm.DB, params domain.ListParams, primary domain.SortDirective) (*domain.PageResult[T], error) {
	tx := db.WithContext(ctx).Model(new(T))
	tx = e.Schema.applyDeletedState(tx, params.IncludeInactive)
	tx = e.Schema.applyDirectFilters(tx, params.Filters)
	tx = e.applyPreloads(tx)

	var rows []T
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	if params.Search != "" {
		needle := NormalizeText(params.Search)
		kept := rows[:0]
		for i := range rows {
			if matchesSearch(e.SearchText(&rows[i]), needle) {
				kept = append(kept, rows[i])
			}
		}
		rows = kept
	}

	e.sortInMemory(rows, primary)

	total := int64(len(rows))
	start := params.Offset()
	if start > len(rows) {
		start = len(rows)
	}
	end := start + params.Limit
	if end > len(rows) {
		end = len(rows)
	}

	return newPageResult(rows[start:end], total, params), nil
}

// sortInMemory orders rows by the primary sort field using a pt-BR collator,
// so accented strings sort in their natural locale order.
func (e *Engine[T]) sortInMemory(rows []T, primary domain.SortDirective) {
	collator := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	desc := primary.Direction == "desc"
	sort.SliceStable(rows, func(i, j int) bool {
		cmp := collator.CompareString(e.SortValue(&rows[i], primary.Field), e.SortValue(&rows[j], primary.Field))
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func (e *Engine[T]) applyPreloads(tx *gorm.DB) *gorm.DB {
	for _, p := range e.Preloads {
		tx = tx.Preload(p.Name, p.Args...)
	}
	return tx
}

func (e *Engine[T]) orderExpr(primary domain.SortDirective) string {
	col, ok := e.Schema.Columns[primary.Field]
	if !ok {
		col = "created_at"
	}
	direction := "ASC"
	if primary.Direction == "desc" {
		direction = "DESC"
	}
	return e.Schema.Table + "." + col + " " + direction
}

func newPageResult[T any](rows []T, total int64, params domain.ListParams) *domain.PageResult[T] {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.Limit)))
	}
	if rows == nil {
		rows = []T{}
	}
	return &domain.PageResult[T]{
		Data:        rows,
		Count:       total,
		TotalPages:  totalPages,
		CurrentPage: params.Page,
	}
}
