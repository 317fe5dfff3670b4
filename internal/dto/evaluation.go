package dto

import (
	"time"

	"github.com/DjordjeVuckovic/calc-tree/internal/domain"
	"github.com/google/uuid"
)

type EvaluateRequest struct {
	Expression string `json:"expression" example:"2 + 3 * 4"`
}

type EvaluateResponse struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression" example:"2 + 3 * 4"`
	Result     *float64  `json:"result,omitempty" example:"14"`
	Display    string    `json:"display" example:"14.0"`
	Tree       string    `json:"tree" example:"(2 + (3 * 4))"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty" enums:"parse,structure,division_by_zero"`
}

type HistoryItem struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Result     *float64  `json:"result,omitempty"`
	Display    string    `json:"display,omitempty"`
	Tree       string    `json:"tree,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Items   []HistoryItem `json:"items"`
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	Size    int           `json:"size"`
	HasMore bool          `json:"has_more"`
}

func NewEvaluateResponse(e domain.Evaluation) EvaluateResponse {
	return EvaluateResponse{
		ID:         e.ID,
		Expression: e.Expression,
		Result:     e.Result,
		Display:    e.Display,
		Tree:       e.Tree,
	}
}

func NewHistoryItem(e domain.Evaluation) HistoryItem {
	return HistoryItem{
		ID:         e.ID,
		Expression: e.Expression,
		Result:     e.Result,
		Display:    e.Display,
		Tree:       e.Tree,
		ErrorKind:  e.ErrorKind,
		Error:      e.Error,
		CreatedAt:  e.CreatedAt,
	}
}
