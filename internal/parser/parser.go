package parser

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrMalformedRow = errors.New("malformed sample row")

type Sample struct {
	Input  []float64
	Target []float64
}

func ReadCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open samples")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	return records, errors.Wrapf(err, "read %s", path)
}

// ParseLines splits every record into inputs leading values and outputs
// trailing values.
func ParseLines(lines [][]string, inputs, outputs int) ([]Sample, error) {
	data := make([]Sample, len(lines))
	for i, line := range lines {
		if len(line) != inputs+outputs {
			return nil, errors.Wrapf(ErrMalformedRow, "row %d has %d fields, want %d", i+1, len(line), inputs+outputs)
		}
		data[i] = Sample{
			Input:  make([]float64, inputs),
			Target: make([]float64, outputs),
		}

		for j, strNum := range line {
			floatNum, err := strconv.ParseFloat(strings.TrimSpace(strNum), 64)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedRow, "row %d field %d: %v", i+1, j+1, err)
			}
			if j < inputs {
				data[i].Input[j] = floatNum
			} else {
				data[i].Target[j-inputs] = floatNum
			}
		}
	}
	return data, nil
}

func LoadSamples(path string, inputs, outputs int) ([]Sample, error) {
	lines, err := ReadCSV(path)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines, inputs, outputs)
}

// XOR returns the four exclusive-or examples.
func XOR() []Sample {
	return []Sample{
		{Input: []float64{0, 0}, Target: []float64{0}},
		{Input: []float64{0, 1}, Target: []float64{1}},
		{Input: []float64{1, 0}, Target: []float64{1}},
		{Input: []float64{1, 1}, Target: []float64{0}},
	}
}
