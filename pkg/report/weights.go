package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteWeights writes one "id,weight" row per sequence
func WriteWeights(w io.Writer, ids []string, weights []float64, precision int) error {
	if len(ids) != len(weights) {
		return errors.Errorf("%d ids but %d weights", len(ids), len(weights))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "weight"}); err != nil {
		return err
	}
	for i, id := range ids {
		if err := cw.Write([]string{id, strconv.FormatFloat(weights[i], 'f', precision, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "writing weights")
}
