package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/katalvlaran/textdiv/divseq"
	"github.com/katalvlaran/textdiv/matrix"
)

// MatrixDoc is the JSON form of a distance matrix.
type MatrixDoc struct {
	Metric    string      `json:"metric,omitempty"`
	Names     []string    `json:"names"`
	Distances [][]float64 `json:"distances"`
}

// SequenceEntry is one selected item; Rank is 1-based like the CSV export.
type SequenceEntry struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
	Rank  int    `json:"rank"`
}

// SequenceDoc is the JSON form of a diversity sequence.
type SequenceDoc struct {
	Metric   string          `json:"metric,omitempty"`
	Strategy string          `json:"strategy"`
	Items    []SequenceEntry `json:"items"`
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// WriteMatrixJSON writes dm as a MatrixDoc.
func WriteMatrixJSON(w io.Writer, metricName string, names []string, dm *matrix.Dense) error {
	if err := matrix.ValidateNotNil(dm); err != nil {
		return err
	}
	if len(names) != dm.Rows() {
		return fmt.Errorf("%w: %d names for %d rows", ErrNameCount, len(names), dm.Rows())
	}

	return encode(w, MatrixDoc{Metric: metricName, Names: names, Distances: dm.ToRows()})
}

// ReadMatrixJSON parses the output of WriteMatrixJSON.
func ReadMatrixJSON(r io.Reader) (*MatrixDoc, *matrix.Dense, error) {
	var doc MatrixDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(doc.Names) != len(doc.Distances) {
		return nil, nil, fmt.Errorf("%w: %d names for %d rows", ErrMalformed, len(doc.Names), len(doc.Distances))
	}
	dm, err := matrix.NewDenseFromRows(doc.Distances)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if err = settle(dm); err != nil {
		return nil, nil, err
	}

	return &doc, dm, nil
}

// WriteSequenceJSON writes res as a SequenceDoc.
func WriteSequenceJSON(w io.Writer, metricName string, names []string, res divseq.Result) error {
	if len(names) != len(res.Order) {
		return fmt.Errorf("%w: %d names for %d items", ErrNameCount, len(names), len(res.Order))
	}
	doc := SequenceDoc{
		Metric:   metricName,
		Strategy: res.Strategy.String(),
		Items:    make([]SequenceEntry, len(res.Order)),
	}
	for k, item := range res.Order {
		doc.Items[k] = SequenceEntry{Name: names[item], Index: item, Rank: k + 1}
	}

	return encode(w, doc)
}

// QueryEntry is one scored candidate.
type QueryEntry struct {
	Name     string  `json:"name"`
	Index    int     `json:"index"`
	Distance float64 `json:"distance"`
}

// QueryDoc is the JSON form of a one-to-many comparison.
type QueryDoc struct {
	Metric   string       `json:"metric,omitempty"`
	Query    string       `json:"query"`
	Nearest  []QueryEntry `json:"nearest"`
	Farthest []QueryEntry `json:"farthest"`
}

// WriteQueryJSON writes the nearest and farthest selections as a QueryDoc.
func WriteQueryJSON(w io.Writer, metricName, query string, names []string, scores []float64, nearest, farthest []int) error {
	if len(names) != len(scores) {
		return fmt.Errorf("%w: %d names for %d scores", ErrNameCount, len(names), len(scores))
	}
	pick := func(order []int) ([]QueryEntry, error) {
		out := make([]QueryEntry, 0, len(order))
		for _, i := range order {
			if i < 0 || i >= len(scores) {
				return nil, fmt.Errorf("%w: index %d", ErrNameCount, i)
			}
			out = append(out, QueryEntry{Name: names[i], Index: i, Distance: scores[i]})
		}

		return out, nil
	}
	doc := QueryDoc{Metric: metricName, Query: query}
	var err error
	if doc.Nearest, err = pick(nearest); err != nil {
		return err
	}
	if doc.Farthest, err = pick(farthest); err != nil {
		return err
	}

	return encode(w, doc)
}
