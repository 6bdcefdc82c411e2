package tabu

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/eqcol/construct"
	"github.com/katalvlaran/eqcol/instance"
	"github.com/katalvlaran/eqcol/solution"
)

func bipartite33(t *testing.T) *instance.Instance {
	t.Helper()
	inst, err := instance.Read(strings.NewReader(
		"6 9\n1 4\n1 5\n1 6\n2 4\n2 5\n2 6\n3 4\n3 5\n3 6\n"))
	if err != nil {
		t.Fatalf("bipartite33: %v", err)
	}
	return inst
}

func cycle5(t *testing.T) *instance.Instance {
	t.Helper()
	inst, err := instance.Read(strings.NewReader("5 5\n1 2\n2 3\n3 4\n4 5\n5 1\n"))
	if err != nil {
		t.Fatalf("cycle5: %v", err)
	}
	return inst
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"defaults", NewConfig(), true},
		{"negative alpha", NewConfig(WithAlpha(-0.1)), false},
		{"alpha too big", NewConfig(WithAlpha(1.1)), false},
		{"negative beta", NewConfig(WithBeta(-1)), false},
		{"negative max iter", NewConfig(WithMaxIter(-1)), false},
		{"negative perturbation limit", NewConfig(WithPerturbationLimit(-1)), false},
		{"perturbation strength too big", NewConfig(WithPerturbationStrength(1.5)), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if c.ok && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if !c.ok && err == nil {
				t.Fatal("Validate() = nil, want an error")
			}
		})
	}
}

func TestRunSolvesBipartiteAtTwoColors(t *testing.T) {
	inst := bipartite33(t)
	rng := rand.New(rand.NewSource(1))

	s, err := construct.GreedyInitial(inst, 2, rng)
	if err != nil {
		t.Fatalf("GreedyInitial: %v", err)
	}

	cfg := NewConfig(WithMaxIter(100000))
	res := Run(s, cfg, rng, nil)

	if !res.Solved {
		t.Fatalf("Run: not solved, final obj=%d", res.FinalObj)
	}
	if s.Obj != 0 {
		t.Fatalf("s.Obj = %d, want 0", s.Obj)
	}
	if err := s.ValidateConsistency(); err != nil {
		t.Fatalf("ValidateConsistency: %v", err)
	}
}

func TestRunSolvesCycle5AtThreeColors(t *testing.T) {
	inst := cycle5(t)
	rng := rand.New(rand.NewSource(42))

	s, err := construct.GreedyInitial(inst, 3, rng)
	if err != nil {
		t.Fatalf("GreedyInitial: %v", err)
	}

	cfg := NewConfig(WithMaxIter(100000))
	res := Run(s, cfg, rng, nil)

	if !res.Solved {
		t.Fatalf("Run: not solved, final obj=%d", res.FinalObj)
	}
}

func TestRunAlreadySolvedReturnsImmediately(t *testing.T) {
	inst := cycle5(t)
	rng := rand.New(rand.NewSource(1))

	s, err := construct.GreedyInitial(inst, 5, rng) // k=n, trivially proper
	if err != nil {
		t.Fatalf("GreedyInitial: %v", err)
	}
	if s.Obj != 0 {
		t.Fatalf("precondition: Obj = %d, want 0 with k=n", s.Obj)
	}

	res := Run(s, NewConfig(), rng, nil)
	if !res.Solved || res.Iterations != 0 {
		t.Fatalf("Run on already-solved state: solved=%v iterations=%d, want true/0", res.Solved, res.Iterations)
	}
}

// TestScanNeighborhoodAspirationGatesExchangeCandidates checks that
// cfg.Aspiration governs the Exchange neighborhood exactly like it governs
// Move: two disjoint edges 0-1 and 2-3, colored monochromatically (0,0,1,1),
// admit a best-delta=-2 exchange from four symmetric vertex pairs, two of
// which are tabu. With aspiration disabled those two must be excluded even
// though they tie the best delta; with aspiration enabled they must be
// admitted.
func TestScanNeighborhoodAspirationGatesExchangeCandidates(t *testing.T) {
	inst, err := instance.Read(strings.NewReader("4 2\n1 2\n3 4\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	s, err := solution.New(inst, 2)
	if err != nil {
		t.Fatalf("solution.New: %v", err)
	}
	s.Color = []int{0, 0, 1, 1}
	s.ClassSize = []int{2, 2}
	s.Conflicts = []int{1, 1, 1, 1}
	s.Obj = 2
	s.ConflictingVertices = []int{0, 1, 2, 3}
	s.ConflictingIndex = []int{0, 1, 2, 3}

	mem := newMemory(inst.N, 2)
	mem.forbid(1, 1, 1_000_000) // makes any exchange assigning color 1 to vertex 1 tabu

	const bestObjFound = 1 // below s.Obj so obj+delta(-2)=0 < bestObjFound triggers aspiration

	withAspiration := scanNeighborhood(s, mem, NewConfig(WithAspiration(true)), bestObjFound, 0)
	withoutAspiration := scanNeighborhood(s, mem, NewConfig(WithAspiration(false)), bestObjFound, 0)

	if len(withoutAspiration) != 2 {
		t.Fatalf("Aspiration=false: got %d candidates, want 2 (tabu ties excluded): %+v", len(withoutAspiration), withoutAspiration)
	}
	if len(withAspiration) != 4 {
		t.Fatalf("Aspiration=true: got %d candidates, want 4 (tabu ties admitted via aspiration): %+v", len(withAspiration), withAspiration)
	}
}

func TestRunRespectsMaxIter(t *testing.T) {
	// K3 cannot be 2-colored; the attempt must exhaust max_iter and report
	// not solved, never looping forever.
	inst, err := instance.Read(strings.NewReader("3 3\n1 2\n2 3\n1 3\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	s, err := construct.GreedyInitial(inst, 2, rng)
	if err != nil {
		t.Fatalf("GreedyInitial: %v", err)
	}

	cfg := NewConfig(WithMaxIter(50), WithPerturbationLimit(1000000))
	res := Run(s, cfg, rng, nil)

	if res.Solved {
		t.Fatal("Run: K3 cannot be properly 2-colored, but reported solved")
	}
	if res.Iterations > 50 {
		t.Fatalf("Iterations = %d, exceeds max_iter=50", res.Iterations)
	}
}
