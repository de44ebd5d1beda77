package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/autobiz/internal/domain"
)

const TableSalesRecords = "sales_records"

type SalesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewSalesRepository(pool *pgxpool.Pool) *SalesRepository {
	return &SalesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveRecords replaces the records stored for uploadName.
func (r *SalesRepository) SaveRecords(ctx context.Context, uploadName string, records ...*domain.SalesRecord) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableSalesRecords).
		Where(sq.Eq{"upload_name": uploadName}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableSalesRecords}, []string{
		"upload_name",
		"product",
		"month",
		"sales",
	}, pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
		return []any{
			uploadName,
			records[i].Product,
			records[i].Month,
			records[i].Sales,
		}, nil
	}))
	if err != nil {
		return copyError(err)
	}

	if copied != int64(len(records)) {
		return copyError(fmt.Errorf("copied %d rows, expected %d", copied, len(records)))
	}

	return nil
}
