package dataio

import (
	"errors"
	"math/rand"

	"github.com/user/welllog_analyzer_go/internal/parser"
)

// ErrInvalidFraction indicates a train fraction outside (0, 1).
var ErrInvalidFraction = errors.New("dataio: train fraction must be in (0, 1)")

// Split shuffles the table's rows with the given seed and divides them into
// train and test tables. The first trainFrac of the shuffled rows (rounded
// down) become the train set. Rows are shared with the input table, not
// copied; callers treating tables as immutable need no copy.
func Split(table *parser.CurveTable, trainFrac float64, seed int64) (train, test *parser.CurveTable, err error) {
	if trainFrac <= 0 || trainFrac >= 1 {
		return nil, nil, ErrInvalidFraction
	}

	n := len(table.Rows)
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nTrain := int(trainFrac * float64(n))

	trainRows := make([][]float64, 0, nTrain)
	testRows := make([][]float64, 0, n-nTrain)
	for i, idx := range perm {
		if i < nTrain {
			trainRows = append(trainRows, table.Rows[idx])
		} else {
			testRows = append(testRows, table.Rows[idx])
		}
	}

	train = &parser.CurveTable{Names: table.Names, Rows: trainRows}
	test = &parser.CurveTable{Names: table.Names, Rows: testRows}
	return train, test, nil
}
