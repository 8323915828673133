package store

import (
	"sort"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fields maps document field names to the exact values they must hold.
type Fields map[string]any

// Filter selects documents. Every Match field must be equal; when AnyOf is set at
// least one of its branches must match as a whole. The zero Filter matches everything.
type Filter struct {
	Match Fields
	AnyOf []Fields
}

func Where(field string, value any) Filter {
	return Filter{Match: Fields{field: value}}
}

func AnyOf(branches ...Fields) Filter {
	return Filter{AnyOf: branches}
}

func (f Filter) apply(tx *gorm.DB) *gorm.DB {
	if exprs := fieldExprs(f.Match); len(exprs) > 0 {
		tx = tx.Where(clause.And(exprs...))
	}

	branches := make([]clause.Expression, 0, len(f.AnyOf))
	for _, b := range f.AnyOf {
		if exprs := fieldExprs(b); len(exprs) > 0 {
			branches = append(branches, clause.And(exprs...))
		}
	}
	switch len(branches) {
	case 0:
	case 1:
		// a lone OrConditions would be joined to the previous condition with OR
		tx = tx.Where(branches[0])
	default:
		tx = tx.Where(clause.Or(branches...))
	}
	return tx
}

func fieldExprs(fields Fields) []clause.Expression {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	exprs := make([]clause.Expression, 0, len(keys))
	for _, k := range keys {
		exprs = append(exprs, datatypes.JSONQuery(bodyColumn).Equals(fields[k], k))
	}
	return exprs
}
