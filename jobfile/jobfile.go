// SPDX-License-Identifier: MIT

// Package jobfile reads calculator jobs from YAML or TOML documents and
// writes their results back in the same format.
//
// A job names one operation and its two operands as row-major buffers:
//
//	op: divide
//	a: {rows: 2, cols: 2, data: [1, 0, 0, 1]}
//	b: {rows: 2, cols: 2, data: [2, 0, 0, 2]}
//
// The same document in TOML:
//
//	op = "divide"
//	[a]
//	rows = 2
//	cols = 2
//	data = [1.0, 0.0, 0.0, 1.0]
//	[b]
//	rows = 2
//	cols = 2
//	data = [2.0, 0.0, 0.0, 2.0]
package jobfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/matrixcalc/engine"
)

// Format selects the document codec.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for formats other than yaml, yml and toml.
var ErrUnknownFormat = errors.New("jobfile: unknown format")

// ParseFormat maps yaml, yml or toml (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from the file extension, or fallback
// when the extension is not recognized.
func FormatFromPath(path string, fallback Format) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}

	return fallback
}

// Matrix is one operand or result: declared dimensions plus row-major data.
type Matrix struct {
	Rows int       `yaml:"rows" toml:"rows"`
	Cols int       `yaml:"cols" toml:"cols"`
	Data []float64 `yaml:"data" toml:"data"`
}

// Shape returns the declared dimensions.
func (m Matrix) Shape() engine.Shape { return engine.Shape{Rows: m.Rows, Cols: m.Cols} }

// Job is a single calculator request.
type Job struct {
	Op string `yaml:"op" toml:"op"`
	A  Matrix `yaml:"a" toml:"a"`
	B  Matrix `yaml:"b" toml:"b"`
}

// Result is the document written for a successful job.
type Result struct {
	Op     string `yaml:"op" toml:"op"`
	Result Matrix `yaml:"result" toml:"result"`
}

// Decode parses a job document. Unknown keys are rejected.
func Decode(data []byte, f Format) (*Job, error) {
	var job Job
	if err := decode(data, f, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

// DecodeResult parses a result document previously written by Encode.
func DecodeResult(data []byte, f Format) (*Result, error) {
	var res Result
	if err := decode(data, f, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

func decode(data []byte, f Format, v interface{}) error {
	switch f {
	case FormatYAML:
		if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
			return fmt.Errorf("jobfile: yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("jobfile: toml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	return nil
}

// Encode renders v (a Job or a Result) in format f.
func Encode(v interface{}, f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("jobfile: yaml: %w", err)
		}
		return out, nil
	case FormatTOML:
		out, err := toml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("jobfile: toml: %w", err)
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// ReadFile loads and decodes the job at path. The extension decides the
// format; fallback applies when it is not recognized.
func ReadFile(path string, fallback Format) (*Job, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("jobfile: %w", err)
	}
	f := FormatFromPath(path, fallback)
	job, err := Decode(data, f)
	if err != nil {
		return nil, "", err
	}

	return job, f, nil
}

// Run parses the operation name and hands both operands to e.
func (j *Job) Run(e *engine.Engine) (*Result, error) {
	op, err := engine.ParseOp(j.Op)
	if err != nil {
		return nil, err
	}
	out, shape, err := e.Apply(op, j.A.Data, j.A.Shape(), j.B.Data, j.B.Shape())
	if err != nil {
		return nil, err
	}

	return &Result{
		Op:     op.String(),
		Result: Matrix{Rows: shape.Rows, Cols: shape.Cols, Data: out},
	}, nil
}
