package pgdb

import (
	"github.com/Artem819/StackTrack/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
)

func BuildRecordQueryFilters(filter repotypes.RecordFilter) ([]sq.Sqlizer, uint64) {
	conds := []sq.Sqlizer{}

	if filter.ExceptionType != "" {
		conds = append(conds, sq.Eq{"exception_type": filter.ExceptionType})
	}

	if filter.Level != "" {
		conds = append(conds, sq.Eq{"level": filter.Level})
	}

	limit := uint64(100)
	if filter.Limit > 0 {
		limit = uint64(filter.Limit)
	}

	return conds, limit
}
