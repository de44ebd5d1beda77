package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/autobiz/internal/domain"
)

const TableUploads = "uploads"

var uploadColumns = []string{
	"name",
	"status",
	"error_message",
	"report_path",
	"processed_at",
}

type UploadsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewUploadsRepository(pool *pgxpool.Pool) *UploadsRepository {
	return &UploadsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UploadsRepository) Uploads(ctx context.Context) ([]*domain.Upload, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(uploadColumns...).
		From(TableUploads).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	uploads, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Upload])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return uploads, nil
}

// UploadsPage returns uploads ordered from the most recently processed one
// together with the total number of uploads.
func (r *UploadsRepository) UploadsPage(ctx context.Context, limit, offset uint64) ([]*domain.Upload, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableUploads).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(uploadColumns...).
		From(TableUploads).
		OrderBy("processed_at DESC NULLS LAST", "name ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	uploads, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Upload])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return uploads, total, nil
}

func (r *UploadsRepository) UpdateOrCreateUpload(ctx context.Context, upload *domain.Upload) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableUploads).
		Columns(
			"name",
			"status",
			"error_message",
			"report_path",
			"processed_at",
		).
		Values(
			upload.Name,
			upload.Status,
			upload.ErrorMessage,
			upload.ReportPath,
			upload.ProcessedAt,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET 
			status = EXCLUDED.status, 
			error_message = EXCLUDED.error_message, 
			report_path = EXCLUDED.report_path, 
			processed_at = EXCLUDED.processed_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *UploadsRepository) ResetProcessingUploads(ctx context.Context) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableUploads).
		Set("status", domain.StatusPending).
		Where(sq.Eq{"status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}
