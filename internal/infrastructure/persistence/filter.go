package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/bizrecords/backend/internal/domain/shared"
)

// applyOrder applies the filter's ordering against a whitelist of sortable
// columns. Unknown columns fall back to created_at so user input can never
// reach the ORDER BY clause verbatim.
func applyOrder(query *gorm.DB, filter shared.Filter, allowed map[string]bool) *gorm.DB {
	column := strings.ToLower(filter.OrderBy)
	if column == "" || !allowed[column] {
		column = "created_at"
	}
	dir := "desc"
	if strings.EqualFold(filter.OrderDir, "asc") {
		dir = "asc"
	}
	return query.Order(column + " " + dir)
}

// applyPagination applies limit and offset from the filter
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	return query.Limit(filter.Limit()).Offset(filter.Offset())
}
