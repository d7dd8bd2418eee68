package repositories

import (
	"strings"

	"offerhub/internal/models"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchScope filters rows whose columns contain search, case-insensitively.
// search is matched literally; % and _ are not wildcards.
func searchScope(search string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		search = strings.TrimSpace(search)
		if search == "" {
			return db
		}
		like := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		conds := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, col := range columns {
			conds = append(conds, "LOWER("+col+`) LIKE ? ESCAPE '\'`)
			args = append(args, like)
		}
		return db.Where(strings.Join(conds, " OR "), args...)
	}
}

func paginateScope(query models.ListQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if query.PerPage <= 0 {
			return db
		}
		return db.Limit(query.PerPage).Offset(query.Offset())
	}
}
