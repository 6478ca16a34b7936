package repo

import (
	"context"

	"github.com/Artem819/StackTrack/internal/domain"
	"github.com/Artem819/StackTrack/internal/repo/pgdb"
	"github.com/Artem819/StackTrack/internal/repo/repotypes"
	"github.com/Artem819/StackTrack/pkg/postgres"
)

type Exception interface {
	SaveRecord(ctx context.Context, rec *domain.ExceptionRecord) (int, error)
	SaveFix(ctx context.Context, recordID int, fix *domain.CodeFix) (int, error)
	GetRecords(ctx context.Context, filter repotypes.RecordFilter) ([]domain.ExceptionRecord, error)
	GetStatsByType(ctx context.Context) ([]domain.TypeStats, error)
}

type Repositories struct {
	Exception
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Exception: pgdb.NewExceptionRepo(pg),
	}
}
