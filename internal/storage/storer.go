package storage

import (
	"context"

	"github.com/DjordjeVuckovic/calc-tree/internal/domain"
	"github.com/google/uuid"
)

// Storer records evaluations. Implementations assign an ID and CreatedAt when
// they are unset.
type Storer interface {
	Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
	None  Type = "none"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
