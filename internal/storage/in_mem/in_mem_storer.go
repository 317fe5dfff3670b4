package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/calc-tree/internal/domain"
	"github.com/DjordjeVuckovic/calc-tree/pkg/pagination"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Evaluation
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Evaluation),
	}
}

func (s *InMemStorer) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	if evaluation.CreatedAt.IsZero() {
		evaluation.CreatedAt = time.Now().UTC()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage[evaluation.ID] = evaluation

	slog.Debug("Saved evaluation to in-memory storage", "id", evaluation.ID, "expression", evaluation.Expression)
	return evaluation.ID, nil
}

func (s *InMemStorer) List(ctx context.Context, page, size int) (*pagination.OffsetResult[domain.Evaluation], error) {
	req := pagination.OffsetRequest{Page: page, Size: size}
	req.Normalize()

	s.storageLock.RLock()
	all := make([]domain.Evaluation, 0, len(s.storage))
	for _, e := range s.storage {
		all = append(all, e)
	}
	s.storageLock.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID.String() > all[j].ID.String()
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	start := min(req.Offset(), len(all))
	end := min(start+req.Size, len(all))

	return pagination.NewOffsetResult(all[start:end], int64(len(all)), req.Page, req.Size), nil
}

func (s *InMemStorer) Close() error {
	return nil
}
