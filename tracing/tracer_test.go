// SPDX-License-Identifier: MIT
package tracing_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/matrixcalc/engine"
	"github.com/katalvlaran/matrixcalc/tracing"
)

func TestTracer_LogsStagesAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := engine.New(engine.WithTracer(tracing.New(zap.New(core))))

	_, err := e.Divide([]float64{1, 0, 0, 1}, []float64{2, 0, 0, 2}, 2, 2, 2, 2)
	require.NoError(t, err)

	entries := logs.FilterMessage("matrix stage").All()
	require.Len(t, entries, 4)

	var stages []string
	for _, entry := range entries {
		require.Equal(t, zapcore.DebugLevel, entry.Level)
		require.Equal(t, "engine", entry.LoggerName)
		fields := entry.ContextMap()
		require.Equal(t, "divide", fields["op"])
		require.Equal(t, "2x2", fields["shape"])
		stages = append(stages, fields["stage"].(string))
	}
	require.Equal(t, []string{"left", "right", "inverse", "result"}, stages)
	require.Equal(t, []interface{}{0.5, 0.0, 0.0, 0.5}, entries[2].ContextMap()["data"])
}

func TestTracer_LogsFailureAtWarn(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e := engine.New(engine.WithTracer(tracing.New(zap.New(core))))

	_, err := e.Divide([]float64{1, 0, 0, 1}, []float64{1, 2, 2, 4}, 2, 2, 2, 2)
	require.ErrorIs(t, err, engine.ErrSingular)

	require.Zero(t, logs.FilterMessage("matrix stage").Len()) // Debug is disabled
	failed := logs.FilterMessage("matrix operation failed").All()
	require.Len(t, failed, 1)
	require.Equal(t, zapcore.WarnLevel, failed[0].Level)
	require.Equal(t, "matrix 2 is not invertible", failed[0].ContextMap()["reason"])
	require.Equal(t, "2x2", failed[0].ContextMap()["right"])
}

func TestNew_NilLogger(t *testing.T) {
	tr := tracing.New(nil)
	require.NotPanics(t, func() {
		tr.Stage(engine.OpAdd, engine.StageResult, engine.Shape{Rows: 1, Cols: 1}, []float64{1})
	})
}
