// SPDX-License-Identifier: MIT

// Package tracing adapts a zap logger to engine.Tracer.
//
// Interpreted operands, the inverse computed by divide and the result are
// logged at Debug level; failures at Warn level. Nothing is formatted
// unless the corresponding level is enabled.
package tracing

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/matrixcalc/engine"
)

// Log messages.
const (
	msgStage  = "matrix stage"
	msgFailed = "matrix operation failed"
)

// Tracer logs engine stages through zap. It is safe for concurrent use.
type Tracer struct {
	logger *zap.Logger
}

var _ engine.Tracer = (*Tracer)(nil)

// New returns a Tracer writing to logger under the "engine" name.
// A nil logger yields a no-op tracer.
func New(logger *zap.Logger) *Tracer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Tracer{logger: logger.Named("engine")}
}

// Stage implements engine.Tracer.
func (t *Tracer) Stage(op engine.Op, stage engine.Stage, shape engine.Shape, data []float64) {
	if ce := t.logger.Check(zapcore.DebugLevel, msgStage); ce != nil {
		ce.Write(
			zap.Stringer("op", op),
			zap.Stringer("stage", stage),
			zap.Stringer("shape", shape),
			zap.Float64s("data", data),
		)
	}
}

// Failed implements engine.Tracer.
func (t *Tracer) Failed(err *engine.OpError) {
	t.logger.Warn(msgFailed,
		zap.Stringer("op", err.Op),
		zap.Stringer("left", err.Left),
		zap.Stringer("right", err.Right),
		zap.String("reason", err.Reason),
		zap.Error(err.Err),
	)
}
