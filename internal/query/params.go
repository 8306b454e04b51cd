package query

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Nairim-holding/api-nairim-v2-sub001/internal/domain"
)

const (
	defaultPage = 1
	// MaxLimit caps the page size for every list endpoint.
	MaxLimit = 100
)

// reservedParams lists query parameter names that never act as filters.
var reservedParams = map[string]bool{
	"limit":           true,
	"page":            true,
	"search":          true,
	"includeInactive": true,
}

var (
	sortBracketPattern   = regexp.MustCompile(`^sort\[([a-zA-Z_][a-zA-Z0-9_]*)\]$`)
	filterBracketPattern = regexp.MustCompile(`^filter\[([a-zA-Z_][a-zA-Z0-9_]*)\]$`)
	validFieldName       = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// ParseListParams extracts pagination, search, sorting, and filtering
// parameters from the request query string.
//
// Recognized shapes:
//   - limit, page: integers; parse failures silently fall back to defaults,
//     limit is clamped to [1,MaxLimit], page to >= 1
//   - search: free-text search term
//   - includeInactive: "true"/"1" includes soft-deleted rows
//   - sort[field]=asc|desc, plus the legacy sort_field=asc|desc convention;
//     unrecognized directions are dropped
//   - filter[field]=value
//   - any other key becomes a direct filter; values that look like a JSON
//     object are parsed as a {from,to} date range and fall back to the raw
//     string otherwise
func ParseListParams(c *gin.Context, defaultLimit int) domain.ListParams {
	limit := atoiDefault(c.Query("limit"), defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	page := atoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = defaultPage
	}

	params := domain.ListParams{
		Limit:           limit,
		Page:            page,
		Search:          strings.TrimSpace(c.Query("search")),
		IncludeInactive: isTruthy(c.Query("includeInactive")),
	}

	values := c.Request.URL.Query()

	// Map iteration order is random; sort the keys so that "first sort
	// directive wins" is deterministic.
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if reservedParams[key] || len(values[key]) == 0 {
			continue
		}
		value := values[key][0]

		if m := sortBracketPattern.FindStringSubmatch(key); m != nil {
			appendSort(&params, m[1], value)
			continue
		}
		if field, ok := strings.CutPrefix(key, "sort_"); ok && validFieldName.MatchString(field) {
			appendSort(&params, field, value)
			continue
		}
		if m := filterBracketPattern.FindStringSubmatch(key); m != nil {
			appendFilter(&params, m[1], value)
			continue
		}
		if validFieldName.MatchString(key) && value != "" {
			appendFilter(&params, key, value)
		}
	}

	return params
}

func appendSort(params *domain.ListParams, field, direction string) {
	direction = strings.ToLower(strings.TrimSpace(direction))
	if direction != "asc" && direction != "desc" {
		return
	}
	params.Sorts = append(params.Sorts, domain.SortDirective{Field: field, Direction: direction})
}

func appendFilter(params *domain.ListParams, field, value string) {
	f := domain.Filter{Field: field, Value: value}
	if r := parseRangeValue(value); r != nil {
		f.Range = r
	}
	params.Filters = append(params.Filters, f)
}

// parseRangeValue opportunistically decodes a JSON {from,to} object.
// Anything else, including malformed JSON, yields nil and the raw string
// is kept.
func parseRangeValue(value string) *domain.DateRange {
	if !strings.HasPrefix(strings.TrimSpace(value), "{") {
		return nil
	}
	var r domain.DateRange
	if err := json.Unmarshal([]byte(value), &r); err != nil {
		return nil
	}
	if r.From == "" && r.To == "" {
		return nil
	}
	return &r
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func isTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1":
		return true
	default:
		return false
	}
}
