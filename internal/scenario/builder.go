package scenario

import "fmt"

// Builder provides a fluent API for writing scenarios in Go instead of YAML.
//
//	sc, err := scenario.New("front-inserts", 4).
//		Initial(1, 2).
//		Insert(0, 9).Expect(9, 1, 2).
//		PushBack(7).Expect(9, 1, 2, 7).
//		PushBack(8).Fails("capacity_exceeded").
//		Build()
type Builder struct {
	sc  Scenario
	err error
}

// New starts a scenario with the given name and capacity.
func New(name string, capacity int) *Builder {
	return &Builder{sc: Scenario{Name: name, Capacity: capacity}}
}

// Initial sets the starting contents.
func (b *Builder) Initial(xs ...int) *Builder {
	b.sc.Initial = append([]int(nil), xs...)
	return b
}

func (b *Builder) step(st Step) *Builder {
	b.sc.Steps = append(b.sc.Steps, st)
	return b
}

func (b *Builder) last(what string) *Step {
	if len(b.sc.Steps) == 0 {
		if b.err == nil {
			b.err = fmt.Errorf("%w: %s before any step", ErrInvalidStep, what)
		}
		return &Step{}
	}
	return &b.sc.Steps[len(b.sc.Steps)-1]
}

func (b *Builder) PushBack(x int) *Builder { return b.step(Step{Op: OpPushBack, Value: &x}) }
func (b *Builder) PopBack() *Builder       { return b.step(Step{Op: OpPopBack}) }
func (b *Builder) Clear() *Builder         { return b.step(Step{Op: OpClear}) }

func (b *Builder) Insert(at, x int) *Builder {
	return b.step(Step{Op: OpInsert, At: at, Value: &x})
}

// InsertEnd inserts x at the end position.
func (b *Builder) InsertEnd(x int) *Builder {
	return b.step(Step{Op: OpInsert, AtEnd: true, Value: &x})
}

// InsertLast inserts x at the position returned by the previous insert or erase.
func (b *Builder) InsertLast(x int) *Builder {
	return b.step(Step{Op: OpInsert, AtLast: true, Value: &x})
}

func (b *Builder) InsertN(at, count, x int) *Builder {
	return b.step(Step{Op: OpInsert, At: at, Count: &count, Value: &x})
}

func (b *Builder) InsertValues(at int, xs ...int) *Builder {
	return b.step(Step{Op: OpInsertValues, At: at, Values: xs})
}

func (b *Builder) Erase(at int) *Builder { return b.step(Step{Op: OpErase, At: at}) }

func (b *Builder) EraseRange(first, last int) *Builder {
	return b.step(Step{Op: OpEraseRange, First: first, Last: last})
}

func (b *Builder) Resize(count int) *Builder { return b.step(Step{Op: OpResize, Count: &count}) }

func (b *Builder) ResizeWith(count, x int) *Builder {
	return b.step(Step{Op: OpResize, Count: &count, Value: &x})
}

func (b *Builder) ShrinkTo(count int) *Builder { return b.step(Step{Op: OpShrinkTo, Count: &count}) }
func (b *Builder) ShrinkBy(count int) *Builder { return b.step(Step{Op: OpShrinkBy, Count: &count}) }
func (b *Builder) Append(xs ...int) *Builder   { return b.step(Step{Op: OpAppend, Values: xs}) }
func (b *Builder) Assign(xs ...int) *Builder   { return b.step(Step{Op: OpAssign, Values: xs}) }

// At checks that element i equals want.
func (b *Builder) At(i, want int) *Builder {
	return b.step(Step{Op: OpAt, Index: i, Want: &want})
}

// AtFails checks that reading element i fails with the given error class.
func (b *Builder) AtFails(i int, class string) *Builder {
	return b.step(Step{Op: OpAt, Index: i, Error: class})
}

// Expect sets the contents required after the previous step.
func (b *Builder) Expect(xs ...int) *Builder {
	want := append([]int{}, xs...)
	b.last("expect").Expect = &want
	return b
}

// Fails requires the previous step to fail with the given error class.
func (b *Builder) Fails(class string) *Builder {
	b.last("fails").Error = class
	return b
}

// Build validates and returns the scenario.
func (b *Builder) Build() (*Scenario, error) {
	if b.err != nil {
		return nil, b.err
	}
	sc := b.sc
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}
