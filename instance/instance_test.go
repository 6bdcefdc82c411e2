package instance

import (
	"errors"
	"strings"
	"testing"
)

func TestReadTriangle(t *testing.T) {
	inst, err := Read(strings.NewReader("3 3\n1 2\n2 3\n1 3\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if inst.N != 3 {
		t.Fatalf("N = %d, want 3", inst.N)
	}
	if inst.EdgeCount != 3 {
		t.Fatalf("EdgeCount = %d, want 3", inst.EdgeCount)
	}
	for v := 0; v < 3; v++ {
		if inst.Degree[v] != 2 {
			t.Fatalf("Degree[%d] = %d, want 2", v, inst.Degree[v])
		}
	}
	if inst.MaxDegree != 2 {
		t.Fatalf("MaxDegree = %d, want 2", inst.MaxDegree)
	}
}

func TestReadToleratesDuplicateEdges(t *testing.T) {
	inst, err := Read(strings.NewReader("2 2\n1 2\n1 2\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if inst.EdgeCount != 1 {
		t.Fatalf("EdgeCount = %d, want 1 (duplicate silently dropped)", inst.EdgeCount)
	}
}

func TestReadRejectsSelfLoop(t *testing.T) {
	_, err := Read(strings.NewReader("2 1\n1 1\n"))
	if !errors.Is(err, ErrSelfLoop) {
		t.Fatalf("err = %v, want ErrSelfLoop", err)
	}
}

func TestReadRejectsOutOfRangeEndpoint(t *testing.T) {
	_, err := Read(strings.NewReader("2 1\n1 3\n"))
	if !errors.Is(err, ErrEndpointOutOfRange) {
		t.Fatalf("err = %v, want ErrEndpointOutOfRange", err)
	}
}

func TestReadRejectsMalformedHeader(t *testing.T) {
	_, err := Read(strings.NewReader("not a header\n"))
	if !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("err = %v, want ErrMalformedHeader", err)
	}
}

func TestReadRejectsMalformedEdge(t *testing.T) {
	_, err := Read(strings.NewReader("2 1\n1\n"))
	if !errors.Is(err, ErrMalformedEdge) {
		t.Fatalf("err = %v, want ErrMalformedEdge", err)
	}
}

func TestReadRejectsEdgeCountMismatch(t *testing.T) {
	_, err := Read(strings.NewReader("3 2\n1 2\n"))
	if !errors.Is(err, ErrEdgeCountMismatch) {
		t.Fatalf("err = %v, want ErrEdgeCountMismatch", err)
	}
}

func TestReadEmptyGraph(t *testing.T) {
	inst, err := Read(strings.NewReader("10 0\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if inst.N != 10 || inst.EdgeCount != 0 || inst.MaxDegree != 0 {
		t.Fatalf("N/EdgeCount/MaxDegree = %d/%d/%d, want 10/0/0", inst.N, inst.EdgeCount, inst.MaxDegree)
	}
}

func TestReadToleratesBlankLinesBetweenEdges(t *testing.T) {
	inst, err := Read(strings.NewReader("3 2\n1 2\n\n2 3\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if inst.EdgeCount != 2 {
		t.Fatalf("EdgeCount = %d, want 2", inst.EdgeCount)
	}
}
