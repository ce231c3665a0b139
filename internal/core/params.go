package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Param describes one adjustable value of a running simulation together with
// its bounds and HUD step.
type Param struct {
	Key   string
	Label string
	Type  ParamType
	Value float64

	Step float64
	Min  float64
	Max  float64
}

// Format renders the value with a precision derived from the step.
func (p Param) Format() string {
	if p.Type == ParamTypeInt {
		return strconv.Itoa(int(p.Value))
	}
	precision := 1
	switch {
	case p.Step < 0.001:
		precision = 4
	case p.Step < 0.01:
		precision = 3
	case p.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(p.Value, 'f', precision, 64)
}

// Nudge returns the value one step in direction, clamped to the bounds.
func (p Param) Nudge(direction int) float64 {
	step := p.Step
	if step <= 0 {
		step = 1
	}
	v := p.Value + float64(direction)*step
	if v < p.Min {
		v = p.Min
	}
	if p.Max > p.Min && v > p.Max {
		v = p.Max
	}
	if p.Type == ParamTypeInt {
		v = float64(int(v + 0.5))
	}
	return v
}

// Tunable is implemented by sims that expose HUD-adjustable parameters.
type Tunable interface {
	Params() []Param
	SetParam(key string, value float64) bool
}
