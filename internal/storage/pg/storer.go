package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/calc-tree/internal/domain"
	"github.com/DjordjeVuckovic/calc-tree/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storer struct {
	db   *pgxpool.Pool
	pool *ConnectionPool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	if pool == nil {
		return nil, fmt.Errorf("connection pool is required")
	}
	return &Storer{db: pool.conn, pool: pool}, nil
}

func (s *Storer) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	if evaluation.CreatedAt.IsZero() {
		evaluation.CreatedAt = time.Now().UTC()
	}

	cmd := `
        INSERT INTO evaluations (id, expression, result, display, tree, error_kind, error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		evaluation.ID,
		evaluation.Expression,
		evaluation.Result,
		evaluation.Display,
		evaluation.Tree,
		evaluation.ErrorKind,
		evaluation.Error,
		evaluation.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (s *Storer) List(ctx context.Context, page, size int) (*pagination.OffsetResult[domain.Evaluation], error) {
	req := pagination.OffsetRequest{Page: page, Size: size}
	req.Normalize()

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM evaluations`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count evaluations: %w", err)
	}

	rows, err := s.db.Query(ctx, `
        SELECT id, expression, result, display, tree, error_kind, error, created_at
        FROM evaluations
        ORDER BY created_at DESC, id DESC
        LIMIT $1 OFFSET $2
    `, req.Size, req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Evaluation, error) {
		var e domain.Evaluation
		err := row.Scan(&e.ID, &e.Expression, &e.Result, &e.Display, &e.Tree, &e.ErrorKind, &e.Error, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan evaluations: %w", err)
	}

	return pagination.NewOffsetResult(items, total, req.Page, req.Size), nil
}

func (s *Storer) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storer) Healthy(ctx context.Context) bool {
	return NewHealthChecker(s.pool).Healthy(ctx)
}
