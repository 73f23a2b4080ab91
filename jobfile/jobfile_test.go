// SPDX-License-Identifier: MIT
package jobfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixcalc/engine"
	"github.com/katalvlaran/matrixcalc/jobfile"
)

const divideYAML = `op: divide
a: {rows: 2, cols: 2, data: [1, 0, 0, 1]}
b: {rows: 2, cols: 2, data: [2, 0, 0, 2]}
`

const multiplyTOML = `op = "mul"

[a]
rows = 2
cols = 2
data = [1.0, 2.0, 3.0, 4.0]

[b]
rows = 2
cols = 2
data = [5.0, 6.0, 7.0, 8.0]
`

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]jobfile.Format{
		"yaml": jobfile.FormatYAML,
		"YML":  jobfile.FormatYAML,
		"toml": jobfile.FormatTOML,
	} {
		got, err := jobfile.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := jobfile.ParseFormat("json")
	require.ErrorIs(t, err, jobfile.ErrUnknownFormat)

	require.Equal(t, jobfile.FormatTOML, jobfile.FormatFromPath("job.toml", jobfile.FormatYAML))
	require.Equal(t, jobfile.FormatYAML, jobfile.FormatFromPath("job.yml", jobfile.FormatTOML))
	require.Equal(t, jobfile.FormatTOML, jobfile.FormatFromPath("job.txt", jobfile.FormatTOML))
}

func TestDecode_YAML_AndRun(t *testing.T) {
	job, err := jobfile.Decode([]byte(divideYAML), jobfile.FormatYAML)
	require.NoError(t, err)
	require.Equal(t, "divide", job.Op)
	require.Equal(t, engine.Shape{Rows: 2, Cols: 2}, job.B.Shape())
	require.Equal(t, []float64{2, 0, 0, 2}, job.B.Data)

	res, err := job.Run(engine.New())
	require.NoError(t, err)
	require.Equal(t, "divide", res.Op)
	require.Equal(t, jobfile.Matrix{Rows: 2, Cols: 2, Data: []float64{0.5, 0, 0, 0.5}}, res.Result)
}

func TestDecode_TOML_AndRun(t *testing.T) {
	job, err := jobfile.Decode([]byte(multiplyTOML), jobfile.FormatTOML)
	require.NoError(t, err)

	res, err := job.Run(engine.New())
	require.NoError(t, err)
	require.Equal(t, "multiply", res.Op)
	require.Equal(t, []float64{19, 22, 43, 50}, res.Result.Data)
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := jobfile.Decode([]byte("op: add\nc: {rows: 1}\n"), jobfile.FormatYAML)
	require.Error(t, err)

	_, err = jobfile.Decode([]byte("op = \"add\"\nextra = 1\n"), jobfile.FormatTOML)
	require.Error(t, err)

	_, err = jobfile.Decode([]byte("op: add"), jobfile.Format("xml"))
	require.ErrorIs(t, err, jobfile.ErrUnknownFormat)
}

func TestEncode_RoundTrip(t *testing.T) {
	want := &jobfile.Result{
		Op:     "subtract",
		Result: jobfile.Matrix{Rows: 1, Cols: 3, Data: []float64{-4, 0.25, 1e-3}},
	}
	for _, f := range []jobfile.Format{jobfile.FormatYAML, jobfile.FormatTOML} {
		out, err := jobfile.Encode(want, f)
		require.NoError(t, err, f)

		got, err := jobfile.DecodeResult(out, f)
		require.NoError(t, err, f)
		require.Equal(t, want, got, f)
	}

	_, err := jobfile.Encode(want, jobfile.Format("ini"))
	require.ErrorIs(t, err, jobfile.ErrUnknownFormat)
}

func TestRun_PropagatesEngineErrors(t *testing.T) {
	job := &jobfile.Job{
		Op: "div",
		A:  jobfile.Matrix{Rows: 2, Cols: 2, Data: []float64{1, 0, 0, 1}},
		B:  jobfile.Matrix{Rows: 2, Cols: 2, Data: []float64{1, 2, 2, 4}},
	}
	_, err := job.Run(engine.New())
	require.ErrorIs(t, err, engine.ErrSingular)

	job.Op = "pow"
	_, err = job.Run(engine.New())
	require.ErrorIs(t, err, engine.ErrUnknownOp)

	job.Op = "add"
	job.B.Data = []float64{1, 2, 3}
	_, err = job.Run(engine.New())
	require.ErrorIs(t, err, engine.ErrBufferLength)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.toml")
	require.NoError(t, os.WriteFile(path, []byte(multiplyTOML), 0o600))

	job, f, err := jobfile.ReadFile(path, jobfile.FormatYAML)
	require.NoError(t, err)
	require.Equal(t, jobfile.FormatTOML, f)
	require.Equal(t, "mul", job.Op)

	_, _, err = jobfile.ReadFile(filepath.Join(dir, "missing.yaml"), jobfile.FormatYAML)
	require.Error(t, err)
}
