package es

import (
	"math"
	"time"

	"github.com/DjordjeVuckovic/calc-tree/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

// Document is the indexed form of a domain.Evaluation.
type Document struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     *float64  `json:"result,omitempty"`
	Display    string    `json:"display,omitempty"`
	Tree       string    `json:"tree,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// toDocument drops a non-finite Result; the JSON body sent to the index
// cannot encode it and Display still carries the value.
func toDocument(e domain.Evaluation) Document {
	result := e.Result
	if result != nil && (math.IsInf(*result, 0) || math.IsNaN(*result)) {
		result = nil
	}
	return Document{
		ID:         e.ID.String(),
		Expression: e.Expression,
		Result:     result,
		Display:    e.Display,
		Tree:       e.Tree,
		ErrorKind:  e.ErrorKind,
		Error:      e.Error,
		CreatedAt:  e.CreatedAt,
	}
}

func (d Document) toDomain() (domain.Evaluation, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Evaluation{}, err
	}
	return domain.Evaluation{
		ID:         id,
		Expression: d.Expression,
		Result:     d.Result,
		Display:    d.Display,
		Tree:       d.Tree,
		ErrorKind:  d.ErrorKind,
		Error:      d.Error,
		CreatedAt:  d.CreatedAt,
	}, nil
}

func buildMapping() types.TypeMapping {
	expression := types.NewTextProperty()
	expression.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}

	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"expression": expression,
			"result":     types.NewDoubleNumberProperty(),
			"display":    types.NewKeywordProperty(),
			"tree":       types.NewKeywordProperty(),
			"error_kind": types.NewKeywordProperty(),
			"error":      types.NewTextProperty(),
			"created_at": types.NewDateProperty(),
		},
	}
}
