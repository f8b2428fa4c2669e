// Package scenario runs scripted operation sequences against a Vector of ints.
//
// A scenario names a capacity, an initial content and a list of steps. Each step applies one
// container operation and may declare the contents expected afterwards or the error class the
// operation must fail with. Scenarios are loaded from YAML (or JSON) files and drive both the
// end-to-end tests and the staticvec command.
package scenario

import (
	"errors"
	"fmt"

	"github.com/comalice/staticvec"
)

var (
	ErrUnsupportedCapacity = errors.New("unsupported capacity")
	ErrUnknownOp           = errors.New("unknown op")
	ErrInvalidStep         = errors.New("invalid step")
	ErrExpectation         = errors.New("expectation failed")
)

// Op names.
const (
	OpPushBack     = "push_back"
	OpPopBack      = "pop_back"
	OpInsert       = "insert"
	OpInsertValues = "insert_values"
	OpErase        = "erase"
	OpEraseRange   = "erase_range"
	OpResize       = "resize"
	OpClear        = "clear"
	OpShrinkTo     = "shrink_to"
	OpShrinkBy     = "shrink_by"
	OpAppend       = "append"
	OpAssign       = "assign"
	OpAt           = "at"
)

// Error class names accepted in Step.Error.
var errorClasses = map[string]error{
	"capacity_exceeded":  staticvec.ErrCapacityExceeded,
	"index_out_of_range": staticvec.ErrIndexOutOfRange,
	"invalid_count":      staticvec.ErrInvalidCount,
}

// Scenario is one scripted run.
type Scenario struct {
	Name     string `json:"name" yaml:"name"`
	Capacity int    `json:"capacity" yaml:"capacity"`
	Initial  []int  `json:"initial,omitempty" yaml:"initial,omitempty"`
	Steps    []Step `json:"steps" yaml:"steps"`
}

// Step is one operation. Which fields are read depends on Op.
//
// Insert ops take their position from At, or from the end when AtEnd is set, or from the
// iterator returned by the previous insert or erase when AtLast is set.
type Step struct {
	Op     string `json:"op" yaml:"op"`
	At     int    `json:"at,omitempty" yaml:"at,omitempty"`
	AtLast bool   `json:"at_last,omitempty" yaml:"at_last,omitempty"`
	AtEnd  bool   `json:"at_end,omitempty" yaml:"at_end,omitempty"`
	First  int    `json:"first,omitempty" yaml:"first,omitempty"`
	Last   int    `json:"last,omitempty" yaml:"last,omitempty"`
	Index  int    `json:"index,omitempty" yaml:"index,omitempty"`
	Count  *int   `json:"count,omitempty" yaml:"count,omitempty"`
	Value  *int   `json:"value,omitempty" yaml:"value,omitempty"`
	Values []int  `json:"values,omitempty" yaml:"values,omitempty"`
	Want   *int   `json:"want,omitempty" yaml:"want,omitempty"`
	Expect *[]int `json:"expect,omitempty" yaml:"expect,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Validate checks the scenario is well formed:
// - non-empty name and a positive capacity
// - initial contents that fit the capacity
// - every step has a known op, the fields that op needs and a known error class
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return errors.New("scenario name is required")
	}
	if s.Capacity <= 0 {
		return fmt.Errorf("scenario %q: capacity must be positive, got %d", s.Name, s.Capacity)
	}
	if len(s.Initial) > s.Capacity {
		return fmt.Errorf("scenario %q: %d initial values exceed capacity %d", s.Name, len(s.Initial), s.Capacity)
	}
	for i, st := range s.Steps {
		if err := st.Validate(); err != nil {
			return fmt.Errorf("scenario %q: step %d: %w", s.Name, i, err)
		}
	}
	return nil
}

// Validate checks that the step names a known op and carries the fields it needs.
func (st *Step) Validate() error {
	switch st.Op {
	case OpPushBack, OpInsert:
		if st.Value == nil {
			return fmt.Errorf("%w: %s needs value", ErrInvalidStep, st.Op)
		}
	case OpShrinkTo, OpShrinkBy, OpResize:
		if st.Count == nil {
			return fmt.Errorf("%w: %s needs count", ErrInvalidStep, st.Op)
		}
	case OpAt:
		if st.Want == nil && st.Error == "" {
			return fmt.Errorf("%w: at needs want or error", ErrInvalidStep)
		}
	case OpPopBack, OpInsertValues, OpErase, OpEraseRange, OpClear, OpAppend, OpAssign:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
	if st.AtLast && st.AtEnd {
		return fmt.Errorf("%w: at_last and at_end are exclusive", ErrInvalidStep)
	}
	if st.Error != "" {
		if _, ok := errorClasses[st.Error]; !ok {
			return fmt.Errorf("%w: unknown error class %q", ErrInvalidStep, st.Error)
		}
	}
	return nil
}

// Capacities returns the capacities a scenario may use.
func Capacities() []int {
	return staticvec.Capacities()
}
