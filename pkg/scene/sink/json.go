package sink

import (
	"encoding/json"
	"time"

	"github.com/Achu067/PLANEXA/pkg/plan"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact   bool
	generated time.Time
}

// WithJSONCompact emits the document without indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// WithJSONGeneratedAt stamps the document with a fixed timestamp instead of
// the current time. Useful for reproducible output in tests.
func WithJSONGeneratedAt(t time.Time) JSONOption {
	return func(r *jsonRenderer) { r.generated = t }
}

type jsonDocument struct {
	GeneratedAt string         `json:"generated_at"`
	Building    *plan.Building `json:"building"`
}

// RenderJSON exports the full building model as a JSON document. This is the
// primary data interchange format: everything needed to re-render the plan
// (rooms, walls, openings, furniture, circulation, metrics, seed) is included.
func RenderJSON(b *plan.Building, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{generated: time.Now()}
	for _, opt := range opts {
		opt(&r)
	}

	doc := jsonDocument{
		GeneratedAt: r.generated.UTC().Format(time.RFC3339),
		Building:    b,
	}
	if r.compact {
		return json.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}
