package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters filters the query by the name and note columns of table.
// Name and note match as substrings. If one of them is set in the query
// string, but empty, only resources with an empty value match.
//
// search matches either column.
func stringFilters(db, query *gorm.DB, setFields []string, table, noteColumn, name, note, search string) *gorm.DB {
	nameColumn := table + ".name"
	noteColumn = table + "." + noteColumn

	if name != "" {
		query = query.Where(nameColumn+" LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where(nameColumn + " = ''")
	}

	if note != "" {
		query = query.Where(noteColumn+" LIKE ?", fmt.Sprintf("%%%s%%", note))
	} else if slices.Contains(setFields, "Note") {
		query = query.Where(noteColumn + " = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where(noteColumn+" LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where(nameColumn+" LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
