package descent

import (
	"strings"
	"testing"

	"github.com/katalvlaran/eqcol/builder"
	"github.com/katalvlaran/eqcol/clock"
	"github.com/katalvlaran/eqcol/instance"
	"github.com/katalvlaran/eqcol/tabu"
)

func TestRunBipartiteK33ReachesTwoColors(t *testing.T) {
	inst, err := instance.Read(strings.NewReader(
		"6 9\n1 4\n1 5\n1 6\n2 4\n2 5\n2 6\n3 4\n3 5\n3 6\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	cfg := tabu.NewConfig(tabu.WithMaxIter(100000))
	res, err := Run(inst, cfg, 1, clock.NewUnlimited())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.BestK != 2 {
		t.Fatalf("BestK = %d, want 2", res.BestK)
	}
	if res.BestState.Obj != 0 {
		t.Fatalf("BestState.Obj = %d, want 0", res.BestState.Obj)
	}
}

func TestRunTriangleStaysAtThreeColors(t *testing.T) {
	inst, err := instance.Read(strings.NewReader("3 3\n1 2\n2 3\n1 3\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	cfg := tabu.NewConfig(tabu.WithMaxIter(10000))
	res, err := Run(inst, cfg, 1, clock.NewUnlimited())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.BestK != 3 {
		t.Fatalf("BestK = %d, want 3 (K3 needs 3 colors)", res.BestK)
	}
}

func TestRunEmptyGraphReachesOneColor(t *testing.T) {
	inst, err := instance.Read(strings.NewReader("10 0\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	cfg := tabu.NewConfig(tabu.WithMaxIter(10000))
	res, err := Run(inst, cfg, 1, clock.NewUnlimited())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.BestK != 1 {
		t.Fatalf("BestK = %d, want 1", res.BestK)
	}
	if res.InitialK != 1 {
		t.Fatalf("InitialK = %d, want 1 (max_degree=0)", res.InitialK)
	}
	if res.DevPercent != 0 {
		t.Fatalf("DevPercent = %v, want 0", res.DevPercent)
	}
}

// TestRunStaysConsistentOnRandomSparseAndRegularGraphs is a stress sweep
// over builder.RandomSparse and builder.RandomRegular fixtures: unlike the
// fixed-seed scenarios above, it exercises many random topologies and
// checks only the invariants that must hold for *any* input, not a specific
// best_k. This is the robustness half of what a planted-partition run
// checks for a known answer (TestScenarioPlantedEquitableInstance in
// eqcol_test.go): the descent must never report a k above what it started
// from, and whatever it reports as best must be an internally consistent,
// equitable coloring.
func TestRunStaysConsistentOnRandomSparseAndRegularGraphs(t *testing.T) {
	cfg := tabu.NewConfig(tabu.WithMaxIter(20000))

	cases := []struct {
		name string
		n    int
		cons builder.Constructor
	}{
		{"random_sparse_seed1", 40, builder.RandomSparse(40, 0.12)},
		{"random_sparse_seed2", 40, builder.RandomSparse(40, 0.25)},
		{"random_regular_seed1", 30, builder.RandomRegular(30, 4)},
		{"random_regular_seed2", 24, builder.RandomRegular(24, 3)},
	}

	for i, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			seed := int64(i + 1)
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, c.cons)
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}

			inst, err := instance.FromGraph(g, c.n)
			if err != nil {
				t.Fatalf("FromGraph: %v", err)
			}

			res, err := Run(inst, cfg, seed, clock.NewUnlimited())
			if err != nil {
				t.Fatalf("Run: %v", err)
			}

			if res.BestK > res.InitialK {
				t.Fatalf("BestK=%d exceeds InitialK=%d", res.BestK, res.InitialK)
			}
			if res.BestState.Obj != 0 {
				t.Fatalf("BestState.Obj=%d, want 0 (bestFeasible must be conflict-free)", res.BestState.Obj)
			}
			if err := res.BestState.ValidateConsistency(); err != nil {
				t.Fatalf("ValidateConsistency: %v", err)
			}

			min, max := res.BestState.ClassSize[0], res.BestState.ClassSize[0]
			for _, sz := range res.BestState.ClassSize {
				if sz < min {
					min = sz
				}
				if sz > max {
					max = sz
				}
			}
			if max-min > 1 {
				t.Fatalf("ClassSize = %v, not equitable (max-min=%d)", res.BestState.ClassSize, max-min)
			}
		})
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	inst, err := instance.Read(strings.NewReader("3 3\n1 2\n2 3\n1 3\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	cfg := tabu.NewConfig(tabu.WithAlpha(-1))
	if _, err := Run(inst, cfg, 1, clock.NewUnlimited()); err == nil {
		t.Fatal("Run: expected an error for an invalid Config")
	}
}
