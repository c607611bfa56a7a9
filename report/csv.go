package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/textdiv/divseq"
	"github.com/katalvlaran/textdiv/matrix"
)

const (
	headerFile     = "File"
	headerDistance = "Distance"
	rankPrefix     = "Rank_"
)

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// WriteMatrixCSV writes dm with one header row and one row per item.
func WriteMatrixCSV(w io.Writer, names []string, dm matrix.Matrix) error {
	if err := matrix.ValidateNotNil(dm); err != nil {
		return err
	}
	n := dm.Rows()
	if len(names) != n || dm.Cols() != n {
		return fmt.Errorf("%w: %d names for %dx%d matrix", ErrNameCount, len(names), n, dm.Cols())
	}

	cw := csv.NewWriter(w)
	record := make([]string, n+1)
	record[0] = headerFile
	copy(record[1:], names)
	if err := cw.Write(record); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		record[0] = names[i]
		for j := 0; j < n; j++ {
			v, err := dm.At(i, j)
			if err != nil {
				return err
			}
			record[j+1] = formatFloat(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadMatrixCSV parses the output of WriteMatrixCSV.
func ReadMatrixCSV(r io.Reader) ([]string, *matrix.Dense, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(records) < 2 || len(records[0]) < 2 || records[0][0] != headerFile {
		return nil, nil, fmt.Errorf("%w: missing %q header", ErrMalformed, headerFile)
	}
	names := append([]string(nil), records[0][1:]...)
	n := len(names)
	if len(records) != n+1 {
		return nil, nil, fmt.Errorf("%w: %d rows for %d names", ErrMalformed, len(records)-1, n)
	}
	dm, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for i, rec := range records[1:] {
		if len(rec) != n+1 || rec[0] != names[i] {
			return nil, nil, fmt.Errorf("%w: row %d", ErrMalformed, i+1)
		}
		for j, cell := range rec[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: row %d col %d: %w", ErrMalformed, i+1, j+1, err)
			}
			if err = dm.Set(i, j, v); err != nil {
				return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
			}
		}
	}
	if err = settle(dm); err != nil {
		return nil, nil, err
	}

	return names, dm, nil
}

// ImportEpsilon is the tolerance applied to imported matrices: diagonal
// entries and mirrored pairs may differ from the exact contract by this
// much, which absorbs rounding in files written by other tools.
const ImportEpsilon = 1e-6

// settle checks dm against the distance contract within ImportEpsilon, then
// zeroes the diagonal and copies the upper triangle onto the lower one so
// the result passes the strict checks downstream.
//
// Errors: ErrMalformed wrapping the matrix sentinel.
// Complexity: O(n²).
func settle(dm *matrix.Dense) error {
	n, err := matrix.ValidateDistance(dm, matrix.WithEpsilon(ImportEpsilon))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	for i := 0; i < n; i++ {
		row := dm.RowView(i)
		for j := i; j < n; j++ {
			v := row[j]
			if i == j {
				v = 0
			}
			if err = dm.SetSym(i, j, v); err != nil {
				return fmt.Errorf("%w: %w", ErrMalformed, err)
			}
		}
	}

	return nil
}

// WriteSequenceCSV writes one row per item in selection order with its
// 1-based rank under the header File,Rank_<strategy>.
func WriteSequenceCSV(w io.Writer, names []string, res divseq.Result) error {
	if len(names) != len(res.Order) {
		return fmt.Errorf("%w: %d names for %d items", ErrNameCount, len(names), len(res.Order))
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{headerFile, rankPrefix + res.Strategy.String()}); err != nil {
		return err
	}
	for k, item := range res.Order {
		if err := cw.Write([]string{names[item], strconv.Itoa(k + 1)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteQueryCSV writes File,Distance rows for the given indices, in order.
func WriteQueryCSV(w io.Writer, names []string, scores []float64, order []int) error {
	if len(names) != len(scores) {
		return fmt.Errorf("%w: %d names for %d scores", ErrNameCount, len(names), len(scores))
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{headerFile, headerDistance}); err != nil {
		return err
	}
	for _, i := range order {
		if i < 0 || i >= len(scores) {
			return fmt.Errorf("%w: index %d", ErrNameCount, i)
		}
		if err := cw.Write([]string{names[i], formatFloat(scores[i])}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
