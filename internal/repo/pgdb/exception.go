package pgdb

import (
	"context"
	"encoding/json"

	"github.com/Artem819/StackTrack/internal/domain"
	"github.com/Artem819/StackTrack/internal/repo/repoerrs"
	"github.com/Artem819/StackTrack/internal/repo/repotypes"
	errorsUtils "github.com/Artem819/StackTrack/pkg/errors"
	"github.com/Artem819/StackTrack/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type ExceptionRepo struct {
	*postgres.Postgres
}

func NewExceptionRepo(pg *postgres.Postgres) *ExceptionRepo {
	return &ExceptionRepo{pg}
}

func (r *ExceptionRepo) SaveRecord(ctx context.Context, rec *domain.ExceptionRecord) (int, error) {
	sql, args, _ := r.Builder.
		Insert("exceptions").
		Columns("logged_at", "level", "exception_type", "exception_message",
			"stack_trace", "surrounding_context",
			"file_path", "line_number", "method_name", "class_name").
		Values(rec.Timestamp, rec.Level, rec.ExceptionType, rec.ExceptionMessage,
			rec.StackTrace, rec.Context,
			rec.FilePath, rec.LineNumber, rec.MethodName, rec.ClassName).
		Suffix("RETURNING id").
		ToSql()

	var id int
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

func (r *ExceptionRepo) SaveFix(ctx context.Context, recordID int, fix *domain.CodeFix) (int, error) {
	suggestions, err := json.Marshal(fix.CodeSuggestions)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	sql, args, _ := r.Builder.
		Insert("fixes").
		Columns("exception_id", "exception_type", "root_cause", "fix_description",
			"code_suggestions", "prevention_tips", "confidence_score").
		Values(recordID, fix.ExceptionType, fix.RootCause, fix.FixDescription,
			suggestions, fix.PreventionTips, fix.ConfidenceScore).
		Suffix("RETURNING id").
		ToSql()

	var id int
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errorsUtils.IsForeignKeyViolation(err) {
			return 0, errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

func (r *ExceptionRepo) GetRecords(ctx context.Context, filter repotypes.RecordFilter) ([]domain.ExceptionRecord, error) {
	conds, limit := BuildRecordQueryFilters(filter)

	query := r.Builder.
		Select("logged_at", "level", "exception_type", "exception_message",
			"stack_trace", "surrounding_context",
			"file_path", "line_number", "method_name", "class_name").
		From("exceptions").
		OrderBy("id").
		Limit(limit)

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}

	sql, args, _ := query.ToSql()
	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return []domain.ExceptionRecord{}, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ExceptionRecord])
	if err != nil {
		return []domain.ExceptionRecord{}, errorsUtils.WrapPathErr(err)
	}

	return recs, nil
}

func (r *ExceptionRepo) GetStatsByType(ctx context.Context) ([]domain.TypeStats, error) {
	sql, args, err := r.Builder.
		Select("exception_type", "COUNT(*) AS count_exceptions").
		From("exceptions").
		GroupBy("exception_type").
		OrderBy("count_exceptions DESC").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	var stats []domain.TypeStats
	for rows.Next() {
		var ts domain.TypeStats
		if err := rows.Scan(&ts.ExceptionType, &ts.Count); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		stats = append(stats, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return stats, nil
}
