package domain

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation is one recorded run of the calculation pipeline.
// A successful run always has Display; Result is set only when the value is
// finite, so infinities and NaN never reach a JSON encoder.
type Evaluation struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Result     *float64  `json:"result,omitempty"`
	Display    string    `json:"display,omitempty"`
	Tree       string    `json:"tree,omitempty"`
	ErrorKind  string    `json:"errorKind,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (e Evaluation) Succeeded() bool {
	return e.Error == ""
}
