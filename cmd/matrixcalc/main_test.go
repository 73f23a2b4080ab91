// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixcalc/jobfile"
)

func TestRun_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`op: divide
a: {rows: 2, cols: 2, data: [1, 0, 0, 1]}
b: {rows: 2, cols: 2, data: [2, 0, 0, 2]}
`), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-job", path}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	res, err := jobfile.DecodeResult(stdout.Bytes(), jobfile.FormatYAML)
	require.NoError(t, err)
	require.Equal(t, "divide", res.Op)
	require.Equal(t, []float64{0.5, 0, 0, 0.5}, res.Result.Data)
}

func TestRun_TOMLStdin(t *testing.T) {
	job := "op = \"add\"\n[a]\nrows = 1\ncols = 2\ndata = [1.0, 2.0]\n[b]\nrows = 1\ncols = 2\ndata = [3.0, 4.0]\n"

	var stdout, stderr bytes.Buffer
	code := run([]string{"-job", "-", "-format", "toml"}, strings.NewReader(job), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	res, err := jobfile.DecodeResult(stdout.Bytes(), jobfile.FormatTOML)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6}, res.Result.Data)
}

func TestRun_EngineErrorExitsOne(t *testing.T) {
	job := "op: divide\na: {rows: 2, cols: 2, data: [1, 0, 0, 1]}\nb: {rows: 2, cols: 2, data: [1, 2, 2, 4]}\n"

	var stdout, stderr bytes.Buffer
	code := run([]string{"-job", "-"}, strings.NewReader(job), &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "matrix 2 is not invertible")
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, run(nil, strings.NewReader(""), &stdout, &stderr))
	require.Contains(t, stderr.String(), "-job is required")

	stderr.Reset()
	require.Equal(t, 1, run([]string{"-job", "-", "-format", "xml"}, strings.NewReader(""), &stdout, &stderr))
	require.Contains(t, stderr.String(), "unknown format")
}

func TestRun_TraceLogsStagesToStderr(t *testing.T) {
	job := "op: divide\na: {rows: 1, cols: 2, data: [1, 2]}\nb: {rows: 2, cols: 2, data: [2, 0, 0, 4]}\n"

	for name, dev := range map[string]string{"production": "false", "development": "true"} {
		t.Run(name, func(t *testing.T) {
			t.Setenv("MATRIXCALC_LOG_DEV", dev)

			var stdout, stderr bytes.Buffer
			code := run([]string{"-job", "-", "-trace"}, strings.NewReader(job), &stdout, &stderr)
			require.Equal(t, 0, code, stderr.String())

			logs := stderr.String()
			require.Equal(t, 4, strings.Count(logs, "matrix stage"), logs)
			compact := strings.ReplaceAll(logs, " ", "") // console encoder pads fields
			for _, stage := range []string{"left", "right", "inverse", "result"} {
				require.Contains(t, compact, `"stage":"`+stage+`"`)
			}
		})
	}
}

func TestRun_NoTraceKeepsStderrQuiet(t *testing.T) {
	job := "op: add\na: {rows: 1, cols: 1, data: [1]}\nb: {rows: 1, cols: 1, data: [2]}\n"

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-job", "-"}, strings.NewReader(job), &stdout, &stderr))
	require.NotContains(t, stderr.String(), "matrix stage")
}

func TestRun_OverflowingDimensionsFail(t *testing.T) {
	job := "op: add\na: {rows: 4294967296, cols: 4294967296, data: []}\nb: {rows: 4294967296, cols: 4294967296, data: []}\n"

	var stdout, stderr bytes.Buffer
	require.Equal(t, 1, run([]string{"-job", "-"}, strings.NewReader(job), &stdout, &stderr))
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "error:")
}
