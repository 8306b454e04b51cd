package query

import "sort"

// Class is the classification of a filterable/sortable field.
type Class int

const (
	// ClassDirect marks a column on the resource's own table.
	ClassDirect Class = iota
	// ClassAddress marks a field reachable through the address join table.
	ClassAddress
	// ClassContact marks a field reachable through the contact join table.
	ClassContact
)

// Relation describes a one-to-many reachable side table (addresses or
// contacts) joined through a named join table. The engine uses it to build
// EXISTS predicates and to name join tables in cascade queries.
type Relation struct {
	// JoinTable is the join table name, e.g. "owner_addresses".
	JoinTable string
	// OwnerKey is the join-table column referencing the owning resource.
	OwnerKey string
	// RelatedKey is the join-table column referencing the related table.
	RelatedKey string
	// Table is the related table name, e.g. "addresses".
	Table string
	// Fields maps query field names to columns on the related table.
	Fields map[string]string
}

// Schema is the static per-resource field classification table. A field
// belongs to exactly one classification.
type Schema struct {
	// Table is the resource's own table name.
	Table string
	// Columns maps direct query field names to columns.
	Columns map[string]string
	// Dates marks direct fields holding timestamps; their filters become
	// range predicates instead of substring matches.
	Dates map[string]bool
	// Address and Contact are nil when the resource has no such relation.
	Address *Relation
	Contact *Relation
	// DefaultLimit is the page size used when the request does not set one.
	DefaultLimit int
}

// Classify returns the classification of a field, or false when the field
// is not part of the schema. Unknown fields are silently ignored by the
// engine, never an error.
func (s *Schema) Classify(field string) (Class, bool) {
	if _, ok := s.Columns[field]; ok {
		return ClassDirect, true
	}
	if s.Address != nil {
		if _, ok := s.Address.Fields[field]; ok {
			return ClassAddress, true
		}
	}
	if s.Contact != nil {
		if _, ok := s.Contact.Fields[field]; ok {
			return ClassContact, true
		}
	}
	return ClassDirect, false
}

// Describe returns the filterable fields grouped by classification, for the
// per-resource GET /filters endpoint.
func (s *Schema) Describe() map[string][]string {
	out := map[string][]string{
		"direct": sortedKeys(s.Columns),
	}
	if s.Address != nil {
		out["address"] = sortedKeys(s.Address.Fields)
	}
	if s.Contact != nil {
		out["contact"] = sortedKeys(s.Contact.Fields)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
