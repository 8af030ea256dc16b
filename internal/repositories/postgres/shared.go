package postgres

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// SharedHelpers holds query-building utilities common to the entity
// repositories in this package.
type SharedHelpers struct {
	db *gorm.DB
}

func NewSharedHelpers(db *gorm.DB) *SharedHelpers {
	return &SharedHelpers{db: db}
}

// ApplyPaginationAndSort applies ordering and limit/offset to a query.
// Only columns listed in allowed are accepted as sort keys; anything else
// falls back to the first allowed column.
func (h *SharedHelpers) ApplyPaginationAndSort(query *gorm.DB, sortBy, sortOrder string, limit, offset int, allowed ...string) *gorm.DB {
	column := allowed[0]
	for _, a := range allowed {
		if sortBy == a {
			column = a
			break
		}
	}

	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s", column, direction))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return query
}
