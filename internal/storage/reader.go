package storage

import (
	"context"

	"github.com/DjordjeVuckovic/calc-tree/internal/domain"
	"github.com/DjordjeVuckovic/calc-tree/pkg/pagination"
)

type Reader interface {
	// List returns recorded evaluations, newest first.
	// page is 1-based; size is the number of items per page.
	List(ctx context.Context, page, size int) (*pagination.OffsetResult[domain.Evaluation], error)
}

// Store is a history backend that can both record and list evaluations.
type Store interface {
	Storer
	Reader
	Close() error
}
