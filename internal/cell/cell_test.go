package cell

import (
	"errors"
	"testing"
)

type payload struct {
	name string
	refs []int
}

func TestCellPutGet(t *testing.T) {
	var c Cell[int]
	c.Put(42)
	if got := c.Get(); got != 42 {
		t.Errorf("got %d want 42", got)
	}
	*c.Value() = 7
	if got := c.Get(); got != 7 {
		t.Errorf("write through Value: got %d want 7", got)
	}
}

func TestCellConstruct(t *testing.T) {
	var c Cell[payload]
	err := c.Construct(func(p *payload) error {
		p.name = "ok"
		p.refs = []int{1, 2}
		return nil
	})
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if c.Get().name != "ok" || len(c.Get().refs) != 2 {
		t.Errorf("got %+v", c.Get())
	}
}

func TestCellConstructFailureResetsSlot(t *testing.T) {
	boom := errors.New("boom")
	var c Cell[payload]
	err := c.Construct(func(p *payload) error {
		p.name = "half built"
		p.refs = make([]int, 8)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got err=%v want boom", err)
	}
	if got := c.Get(); got.name != "" || got.refs != nil {
		t.Errorf("slot not reset after failed construct: %+v", got)
	}
}

func TestCellDestroyAndTake(t *testing.T) {
	var c Cell[payload]
	c.Put(payload{name: "a", refs: []int{1}})
	c.Destroy()
	if got := c.Get(); got.name != "" || got.refs != nil {
		t.Errorf("Destroy left %+v", got)
	}

	c.Put(payload{name: "b"})
	moved := c.Take()
	if moved.name != "b" {
		t.Errorf("Take returned %+v", moved)
	}
	if c.Get().name != "" {
		t.Errorf("Take left %+v behind", c.Get())
	}
}

func TestReleaseAll(t *testing.T) {
	cells := make([]Cell[string], 3)
	cells[0].Put("x")
	cells[1].Put("y")
	cells[2].Put("z")

	ReleaseAll(cells[1:])
	if cells[0].Get() != "x" {
		t.Errorf("released outside the range: %q", cells[0].Get())
	}
	ReleaseAll(cells)
	for i := range cells {
		if cells[i].Get() != "" {
			t.Errorf("cell %d not released: %q", i, cells[i].Get())
		}
	}
}
