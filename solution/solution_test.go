package solution

import (
	"strings"
	"testing"

	"github.com/katalvlaran/eqcol/instance"
)

// triangleInstance returns K3 (0-1-2 all adjacent).
func triangleInstance(t *testing.T) *instance.Instance {
	t.Helper()
	inst, err := instance.Read(strings.NewReader("3 3\n1 2\n2 3\n1 3\n"))
	if err != nil {
		t.Fatalf("triangleInstance: %v", err)
	}
	return inst
}

func TestNew(t *testing.T) {
	inst := triangleInstance(t)
	s, err := New(inst, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.FloorSize != 1 || s.BigSize != 2 || s.R != 0 {
		t.Fatalf("FloorSize/BigSize/R = %d/%d/%d, want 1/2/0", s.FloorSize, s.BigSize, s.R)
	}
	for v := 0; v < inst.N; v++ {
		if s.Color[v] != -1 {
			t.Fatalf("Color[%d] = %d, want -1 before construction", v, s.Color[v])
		}
	}
}

func TestApplyMoveCreatesAndResolvesConflict(t *testing.T) {
	inst := triangleInstance(t)
	s, _ := New(inst, 3)
	s.ApplyMove(0, 0)
	s.ApplyMove(1, 1)
	s.ApplyMove(2, 2)
	if s.Obj != 0 {
		t.Fatalf("Obj after distinct coloring = %d, want 0", s.Obj)
	}

	s.ApplyMove(1, 0) // now 0 and 1 share color 0, and both are adjacent
	if s.Obj != 1 {
		t.Fatalf("Obj after creating one conflict = %d, want 1", s.Obj)
	}
	if s.Conflicts[0] != 1 || s.Conflicts[1] != 1 {
		t.Fatalf("Conflicts[0..1] = %d,%d, want 1,1", s.Conflicts[0], s.Conflicts[1])
	}
	if !s.IsConflicting(0) || !s.IsConflicting(1) {
		t.Fatal("expected both 0 and 1 to be conflicting")
	}
	if len(s.ConflictingVertices) != 2 {
		t.Fatalf("len(ConflictingVertices) = %d, want 2", len(s.ConflictingVertices))
	}

	s.ApplyMove(1, 1) // resolve
	if s.Obj != 0 {
		t.Fatalf("Obj after resolving = %d, want 0", s.Obj)
	}
	if len(s.ConflictingVertices) != 0 {
		t.Fatalf("len(ConflictingVertices) = %d, want 0", len(s.ConflictingVertices))
	}
}

func TestApplyMoveNoOpOnSameColor(t *testing.T) {
	inst := triangleInstance(t)
	s, _ := New(inst, 3)
	s.ApplyMove(0, 0)
	s.ApplyMove(1, 0)
	before := s.Clone()

	s.ApplyMove(1, s.Color[1]) // P6: no-op

	if s.Obj != before.Obj {
		t.Fatalf("Obj changed on same-color ApplyMove: %d -> %d", before.Obj, s.Obj)
	}
	for v := 0; v < inst.N; v++ {
		if s.Color[v] != before.Color[v] || s.Conflicts[v] != before.Conflicts[v] {
			t.Fatalf("state changed on same-color ApplyMove at v=%d", v)
		}
	}
}

func TestApplyExchangeRoundTrip(t *testing.T) {
	inst := triangleInstance(t)
	s, _ := New(inst, 3)
	s.ApplyMove(0, 0)
	s.ApplyMove(1, 1)
	s.ApplyMove(2, 0) // conflict with 0

	before := s.Clone()
	s.ApplyExchange(0, 1)
	s.ApplyExchange(0, 1)

	if s.Obj != before.Obj {
		t.Fatalf("Obj after round-trip exchange = %d, want %d", s.Obj, before.Obj)
	}
	for v := 0; v < inst.N; v++ {
		if s.Color[v] != before.Color[v] {
			t.Fatalf("Color[%d] after round-trip = %d, want %d", v, s.Color[v], before.Color[v])
		}
		if s.Conflicts[v] != before.Conflicts[v] {
			t.Fatalf("Conflicts[%d] after round-trip = %d, want %d", v, s.Conflicts[v], before.Conflicts[v])
		}
	}
}

func TestDeltaMatchesApply(t *testing.T) {
	inst := triangleInstance(t)
	s, _ := New(inst, 3)
	s.ApplyMove(0, 0)
	s.ApplyMove(1, 1)
	s.ApplyMove(2, 0)

	objBefore := s.Obj
	delta := s.MoveDelta(2, 1)
	s.ApplyMove(2, 1)
	if s.Obj != objBefore+delta {
		t.Fatalf("Obj after move = %d, want %d (before=%d, delta=%d)", s.Obj, objBefore+delta, objBefore, delta)
	}
}

func TestExchangeDeltaMatchesApply(t *testing.T) {
	inst := triangleInstance(t)
	s, _ := New(inst, 3)
	s.ApplyMove(0, 0)
	s.ApplyMove(1, 1)
	s.ApplyMove(2, 0)

	objBefore := s.Obj
	delta := s.ExchangeDelta(1, 2)
	s.ApplyExchange(1, 2)
	if s.Obj != objBefore+delta {
		t.Fatalf("Obj after exchange = %d, want %d (before=%d, delta=%d)", s.Obj, objBefore+delta, objBefore, delta)
	}
}

func TestValidateConsistency(t *testing.T) {
	inst := triangleInstance(t)
	s, _ := New(inst, 3)
	s.ApplyMove(0, 0)
	s.ApplyMove(1, 1)
	s.ApplyMove(2, 0)
	s.ApplyExchange(0, 1)

	if err := s.ValidateConsistency(); err != nil {
		t.Fatalf("ValidateConsistency: %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	inst := triangleInstance(t)
	s, _ := New(inst, 3)
	s.ApplyMove(0, 0)
	s.ApplyMove(1, 0)

	c := s.Clone()
	s.ApplyMove(1, 1)

	if c.Obj == s.Obj {
		t.Fatalf("clone aliased: Obj tracked the mutation")
	}
	if c.Color[1] == s.Color[1] {
		t.Fatalf("clone aliased: Color tracked the mutation")
	}
}
