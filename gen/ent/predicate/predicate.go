// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ProductInsight is the predicate function for productinsight builders.
type ProductInsight func(*sql.Selector)
