package scenario

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/comalice/staticvec"
)

// Runner executes scenarios.
type Runner struct {
	logger    *zap.Logger
	keepGoing bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger steps and summaries are written to.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithKeepGoing makes a scenario continue past a failed step instead of stopping at it.
func WithKeepGoing(keep bool) Option {
	return func(r *Runner) {
		r.keepGoing = keep
	}
}

// NewRunner creates a Runner. Without WithLogger nothing is logged.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StepResult records what one step did.
type StepResult struct {
	Index    int
	Op       string
	Contents []int
	Err      error  // error returned by the operation, if any
	Failure  string // empty when the step met its expectations
}

// Result is the outcome of one scenario.
type Result struct {
	Name     string
	Capacity int
	Steps    []StepResult
	Final    []int
	Elapsed  time.Duration
}

// Passed reports whether every executed step met its expectations.
func (r *Result) Passed() bool {
	return len(r.Failed()) == 0
}

// Failed returns the steps that did not meet their expectations.
func (r *Result) Failed() []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if s.Failure != "" {
			out = append(out, s)
		}
	}
	return out
}

// Run validates and executes sc. When a step fails its expectations Run returns the partial
// Result together with an error wrapping ErrExpectation.
func (r *Runner) Run(sc *Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := r.dispatch(sc)
	if res != nil {
		res.Elapsed = time.Since(start)
	}
	switch {
	case err == nil:
		r.logger.Info("scenario passed",
			zap.String("scenario", sc.Name),
			zap.Int("capacity", sc.Capacity),
			zap.Int("steps", len(res.Steps)),
			zap.Duration("elapsed", res.Elapsed))
	case errors.Is(err, ErrExpectation):
		r.logger.Warn("scenario failed", zap.String("scenario", sc.Name), zap.Error(err))
	default:
		r.logger.Error("scenario error", zap.String("scenario", sc.Name), zap.Error(err))
	}
	return res, err
}

// RunFile loads and runs the scenario at path.
func (r *Runner) RunFile(path string) (*Result, error) {
	sc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return r.Run(sc)
}

func run[S staticvec.Storage[int]](r *Runner, sc *Scenario) (*Result, error) {
	v, err := staticvec.FromSlice[int, S](sc.Initial)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: initial contents: %w", sc.Name, err)
	}

	log := r.logger.With(zap.String("scenario", sc.Name), zap.Int("capacity", v.Cap()))
	ex := &executor[S]{v: &v, last: v.Begin()}
	res := &Result{Name: sc.Name, Capacity: v.Cap()}
	failures := 0

	for i := range sc.Steps {
		st := &sc.Steps[i]
		got, opErr := ex.apply(st)
		sr := StepResult{Index: i, Op: st.Op, Err: opErr, Contents: v.AppendTo(nil)}
		sr.Failure = check(st, got, opErr, sr.Contents)
		res.Steps = append(res.Steps, sr)

		if sr.Failure == "" {
			log.Debug("step",
				zap.Int("step", i),
				zap.String("op", st.Op),
				zap.Ints("contents", sr.Contents),
				zap.Error(opErr))
			continue
		}
		failures++
		log.Warn("step failed",
			zap.Int("step", i),
			zap.String("op", st.Op),
			zap.String("failure", sr.Failure),
			zap.Ints("contents", sr.Contents))
		if !r.keepGoing {
			break
		}
	}

	res.Final = v.AppendTo(nil)
	if failures > 0 {
		return res, fmt.Errorf("scenario %q: %w: %d of %d steps", sc.Name, ErrExpectation, failures, len(res.Steps))
	}
	return res, nil
}

type executor[S staticvec.Storage[int]] struct {
	v    *staticvec.Vector[int, S]
	last staticvec.Iterator[int]
}

func (ex *executor[S]) pos(st *Step) staticvec.Iterator[int] {
	switch {
	case st.AtLast:
		return ex.last
	case st.AtEnd:
		return ex.v.End()
	default:
		return ex.v.Begin().Add(st.At)
	}
}

// apply runs st. The int result is only meaningful for OpAt.
func (ex *executor[S]) apply(st *Step) (int, error) {
	v := ex.v
	var (
		it  staticvec.Iterator[int]
		err error
	)
	switch st.Op {
	case OpPushBack:
		_, err = v.PushBack(*st.Value)
		return 0, err
	case OpPopBack:
		v.PopBack()
		return 0, nil
	case OpInsert:
		if st.Count == nil {
			it, err = v.Insert(ex.pos(st), *st.Value)
		} else {
			it, err = v.InsertN(ex.pos(st), *st.Count, *st.Value)
		}
	case OpInsertValues:
		it, err = v.InsertSlice(ex.pos(st), st.Values)
	case OpErase:
		it, err = v.Erase(ex.pos(st))
	case OpEraseRange:
		it, err = v.EraseRange(v.Begin().Add(st.First), v.Begin().Add(st.Last))
	case OpResize:
		if st.Value == nil {
			return 0, v.Resize(*st.Count)
		}
		return 0, v.ResizeWith(*st.Count, *st.Value)
	case OpClear:
		v.Clear()
		return 0, nil
	case OpShrinkTo:
		v.ShrinkTo(*st.Count)
		return 0, nil
	case OpShrinkBy:
		v.ShrinkBy(*st.Count)
		return 0, nil
	case OpAppend:
		return 0, v.Append(st.Values...)
	case OpAssign:
		return 0, v.AssignValues(st.Values...)
	case OpAt:
		return v.At(st.Index)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
	if err == nil {
		ex.last = it
	}
	return 0, err
}

// check returns a description of how the step missed its expectations, or "".
func check(st *Step, got int, opErr error, contents []int) string {
	if st.Error != "" {
		want := errorClasses[st.Error]
		if opErr == nil {
			return fmt.Sprintf("want %s error, got none", st.Error)
		}
		if !errors.Is(opErr, want) {
			return fmt.Sprintf("want %s error, got %v", st.Error, opErr)
		}
	} else if opErr != nil {
		return fmt.Sprintf("unexpected error: %v", opErr)
	}

	if st.Op == OpAt && st.Want != nil && opErr == nil && got != *st.Want {
		return fmt.Sprintf("at(%d) = %d, want %d", st.Index, got, *st.Want)
	}
	if st.Expect != nil && !slices.Equal(*st.Expect, contents) {
		return fmt.Sprintf("contents %v, want %v", contents, *st.Expect)
	}
	return ""
}
