package dataset

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/mat"
)

// fixtureFile is the on-disk JSON schema for a recorded dataset.
type fixtureFile struct {
	Trials   int         `json:"trials"`
	Sensors  int         `json:"sensors"`
	Features [][]float64 `json:"features"`
	Target   []float64   `json:"target"`
}

// WriteFixture stores d as JSON at path, gzip-compressed when the path ends
// in ".gz".
func WriteFixture(path string, d Dataset) error {
	rows, cols := d.Features.Dims()
	file := fixtureFile{
		Trials:   rows,
		Sensors:  cols,
		Features: make([][]float64, rows),
		Target:   d.Target,
	}
	for i := range rows {
		file.Features[i] = mat.Row(nil, i, d.Features)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create fixture: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)
		defer gz.Close()
		w = gz
	}

	if err := sonic.ConfigDefault.NewEncoder(w).Encode(file); err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	return nil
}

// ReadFixture loads a dataset written by WriteFixture and validates its
// shape before handing it back.
func ReadFixture(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return Dataset{}, fmt.Errorf("open gzip fixture: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	var file fixtureFile
	if err := sonic.ConfigDefault.NewDecoder(r).Decode(&file); err != nil {
		return Dataset{}, fmt.Errorf("decode fixture: %w", err)
	}

	if file.Trials <= 0 || file.Sensors <= 0 {
		return Dataset{}, fmt.Errorf("fixture declares %d trials x %d sensors", file.Trials, file.Sensors)
	}
	if len(file.Features) != file.Trials {
		return Dataset{}, fmt.Errorf("%w: header says %d trials, found %d feature rows", ErrShapeMismatch, file.Trials, len(file.Features))
	}
	features := mat.NewDense(file.Trials, file.Sensors, nil)
	for i, row := range file.Features {
		if len(row) != file.Sensors {
			return Dataset{}, fmt.Errorf("%w: trial %d has %d sensors, header says %d", ErrShapeMismatch, i, len(row), file.Sensors)
		}
		features.SetRow(i, row)
	}

	return New(features, file.Target)
}
