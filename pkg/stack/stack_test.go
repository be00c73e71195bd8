package stack_test

import (
	"arrow/pkg/stack"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestStack(t *testing.T) {
	s := stack.NewStack("a", "b")
	s.Push("c")

	if top, ok := s.Peek(); !ok || top != "c" {
		t.Fatalf("expected c on top, got %q", top)
	}

	for _, want := range []string{"c", "b", "a"} {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Errorf("expected %q, got %q (ok=%v)", want, got, ok)
		}
	}

	if _, ok := s.Pop(); ok {
		t.Error("expected pop on empty stack to report false")
	}
	if s.Size() != 0 {
		t.Errorf("expected empty stack, got size %d", s.Size())
	}
}

func TestTruncate(t *testing.T) {
	s := stack.NewStack(1, 2, 3, 4)
	s.Truncate(1)

	if s.Size() != 1 {
		t.Fatalf("expected size 1, got %d", s.Size())
	}
	if top, _ := s.Peek(); top != 1 {
		t.Errorf("expected bottom element to survive, got %d", top)
	}
}

func TestLIFO(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("pops return pushes in reverse order", prop.ForAll(
		func(items []int) bool {
			s := stack.NewStack[int]()
			for _, it := range items {
				s.Push(it)
			}
			for i := len(items) - 1; i >= 0; i-- {
				got, ok := s.Pop()
				if !ok || got != items[i] {
					return false
				}
			}
			return s.Size() == 0
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}
