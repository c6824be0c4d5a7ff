// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package recorder

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/0xsoniclabs/categorical/stochastic/statistics"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// samplesFileId identifies sample files.
const samplesFileId = "samples"

// SamplesJSON is the file format of a recorded batch of samples.
type SamplesJSON struct {
	FileId  string          `json:"FileId"`
	Weights []float64       `json:"Weights"` // relative weights of the distribution
	Seed    uint64          `json:"Seed"`    // seed of the random generator
	DType   string          `json:"DType"`   // element type of the samples
	Shape   []int           `json:"Shape"`   // extent of each dimension
	Samples json.RawMessage `json:"Samples"` // nested lists; a bare number for an empty shape
}

// NewSamplesJSON creates the file content for a batch of samples.
func NewSamplesJSON(weights []float64, seed uint64, dtype string, shape []int, samples json.Marshaler) (*SamplesJSON, error) {
	raw, err := samples.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "cannot convert samples to JSON")
	}
	return &SamplesJSON{
		FileId:  samplesFileId,
		Weights: weights,
		Seed:    seed,
		DType:   dtype,
		Shape:   shape,
		Samples: raw,
	}, nil
}

// Flatten returns the samples in row-major order.
func (s *SamplesJSON) Flatten() ([]float64, error) {
	var nested any
	if err := json.Unmarshal(s.Samples, &nested); err != nil {
		return nil, errors.Wrap(err, "cannot decode samples")
	}
	flat := []float64{}
	var walk func(v any) error
	walk = func(v any) error {
		switch x := v.(type) {
		case float64:
			flat = append(flat, x)
		case []any:
			for _, e := range x {
				if err := walk(e); err != nil {
					return err
				}
			}
		default:
			return errors.Newf("unexpected sample value (%v)", v)
		}
		return nil
	}
	if err := walk(nested); err != nil {
		return nil, err
	}
	return flat, nil
}

// isCompressed reports whether a sample file is gzip compressed.
func isCompressed(filename string) bool {
	return strings.HasSuffix(filename, ".gz")
}

// WriteSamples writes a samples file in JSON format. Files whose name ends
// in .gz are gzip compressed.
func WriteSamples(filename string, s *SamplesJSON) (err error) {
	f, fErr := os.Create(filename)
	if fErr != nil {
		return errors.Wrapf(fErr, "cannot open samples file %v", filename)
	}
	defer func(f *os.File) {
		err = errors.CombineErrors(err, f.Close())
	}(f)

	var w io.Writer = f
	if isCompressed(filename) {
		gz := gzip.NewWriter(f)
		defer func(gz *gzip.Writer) {
			err = errors.CombineErrors(err, gz.Close())
		}(gz)
		w = gz
	}
	return EncodeSamples(w, s)
}

// EncodeSamples writes the JSON encoding of a samples file to w.
func EncodeSamples(w io.Writer, s *SamplesJSON) error {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "    ")
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "failed to convert JSON file")
	}
	return buf.Flush()
}

// ReadSamples reads a samples file written by WriteSamples.
func ReadSamples(filename string) (s *SamplesJSON, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed opening samples file %v", filename)
	}
	defer func(file *os.File) {
		err = errors.CombineErrors(err, file.Close())
	}(file)

	var r io.Reader = file
	if isCompressed(filename) {
		gz, gzErr := gzip.NewReader(file)
		if gzErr != nil {
			return nil, errors.Wrapf(gzErr, "could not create gzip reader for samples file %v", filename)
		}
		defer func(gz *gzip.Reader) {
			err = errors.CombineErrors(err, gz.Close())
		}(gz)
		r = gz
	}
	contents, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading samples file %v", filename)
	}
	var samples SamplesJSON
	if err := json.Unmarshal(contents, &samples); err != nil {
		return nil, errors.Wrapf(err, "cannot unmarshal samples file %v", filename)
	}
	if samples.FileId != samplesFileId {
		return nil, statistics.InvalidArgumentf("ReadSamples: file %v is not a samples file", filename)
	}
	return &samples, nil
}
