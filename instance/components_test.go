package instance

import (
	"strings"
	"testing"
)

func TestConnectedComponentsSingleComponent(t *testing.T) {
	inst, err := Read(strings.NewReader("5 4\n1 2\n2 3\n3 4\n4 5\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	comps, err := inst.ConnectedComponents()
	if err != nil {
		t.Fatalf("ConnectedComponents: %v", err)
	}
	if len(comps) != 1 {
		t.Fatalf("len(comps) = %d, want 1", len(comps))
	}
	if len(comps[0]) != 5 {
		t.Fatalf("len(comps[0]) = %d, want 5", len(comps[0]))
	}
}

func TestConnectedComponentsSplitsDisjointGraph(t *testing.T) {
	// 0-1-2 triangle, 3-4 edge, 5 isolated.
	inst, err := Read(strings.NewReader("6 4\n1 2\n2 3\n1 3\n4 5\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	comps, err := inst.ConnectedComponents()
	if err != nil {
		t.Fatalf("ConnectedComponents: %v", err)
	}
	if len(comps) != 3 {
		t.Fatalf("len(comps) = %d, want 3", len(comps))
	}

	sizes := map[int]int{}
	for _, c := range comps {
		sizes[len(c)]++
	}
	if sizes[3] != 1 || sizes[2] != 1 || sizes[1] != 1 {
		t.Fatalf("unexpected component size distribution: %v", sizes)
	}
}

func TestConnectedComponentsEmptyGraphIsAllSingletons(t *testing.T) {
	inst, err := Read(strings.NewReader("4 0\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	comps, err := inst.ConnectedComponents()
	if err != nil {
		t.Fatalf("ConnectedComponents: %v", err)
	}
	if len(comps) != 4 {
		t.Fatalf("len(comps) = %d, want 4", len(comps))
	}
}
