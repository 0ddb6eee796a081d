package postgres

import (
	"strings"

	"storefront/internal/domain/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// paginate applies LIMIT/OFFSET for a normalized page request.
func paginate(page query.PageRequest) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page.Limit <= 0 {
			return db
		}

		return db.Offset(page.Offset()).Limit(page.Limit)
	}
}

// orderBy sorts by a whitelisted column, then by id so pages are stable.
// The column name comes from query.Whitelist and is quoted by GORM.
func orderBy(sort query.Sort, fallback string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		column := sort.Column
		desc := sort.Desc
		if column == "" {
			column, desc = fallback, true
		}

		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}
}

// searchILike matches expr case-insensitively against a literal substring.
func searchILike(expr, search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		search = strings.TrimSpace(search)
		if search == "" {
			return db
		}

		return db.Where(expr+` ILIKE ? ESCAPE '\'`, "%"+query.EscapeLike(search)+"%")
	}
}
