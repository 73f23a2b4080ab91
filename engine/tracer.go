// SPDX-License-Identifier: MIT

package engine

// Stage identifies the value an Engine reports to its Tracer.
type Stage uint8

// Stages in the order an operation reports them. StageInverse is only
// reported by Divide.
const (
	StageLeft Stage = iota + 1
	StageRight
	StageInverse
	StageResult
)

var stageNames = [...]string{
	StageLeft:    "left",
	StageRight:   "right",
	StageInverse: "inverse",
	StageResult:  "result",
}

func (s Stage) String() string {
	if s < StageLeft || s > StageResult {
		return "unknown"
	}

	return stageNames[s]
}

// Tracer observes engine operations. Implementations must be safe for
// concurrent use. data is a private copy and may be retained.
type Tracer interface {
	// Stage reports an interpreted operand, the computed inverse or the result.
	Stage(op Op, stage Stage, shape Shape, data []float64)
	// Failed reports the error an operation is about to return.
	Failed(err *OpError)
}

// NopTracer discards everything. It is the default Tracer.
type NopTracer struct{}

func (NopTracer) Stage(Op, Stage, Shape, []float64) {}
func (NopTracer) Failed(*OpError)                   {}
