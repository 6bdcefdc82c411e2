package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantedPartitionVertexCount(t *testing.T) {
	g, err := BuildGraph(nil, []BuilderOption{WithSeed(1)}, PlantedPartition(100, 5, 0.5))
	require.NoError(t, err)
	assert.Equal(t, 100, len(g.Vertices()))
}

func TestPlantedPartitionZeroDensityYieldsNoCrossEdges(t *testing.T) {
	g, err := BuildGraph(nil, []BuilderOption{WithSeed(1)}, PlantedPartition(30, 5, 0.0))
	require.NoError(t, err)
	assert.Equal(t, 0, len(g.Edges()))
}

func TestPlantedPartitionCliqueWitnessAddsEdges(t *testing.T) {
	plain, err := BuildGraph(nil, []BuilderOption{WithSeed(2)}, PlantedPartition(20, 5, 0.0))
	require.NoError(t, err)

	withClique, err := BuildGraph(nil, []BuilderOption{WithSeed(2), WithCliqueWitness(true)}, PlantedPartition(20, 5, 0.0))
	require.NoError(t, err)

	// With density 0, the only edges possible come from the clique witness:
	// exactly C(5,2)=10 of them.
	assert.Equal(t, 0, len(plain.Edges()))
	assert.Equal(t, 10, len(withClique.Edges()))
}

func TestPlantedPartitionRejectsKGreaterThanN(t *testing.T) {
	_, err := BuildGraph(nil, []BuilderOption{WithSeed(1)}, PlantedPartition(3, 5, 0.5))
	assert.ErrorIs(t, err, ErrPlantedInfeasible)
}

func TestPlantedPartitionRejectsBadDensity(t *testing.T) {
	_, err := BuildGraph(nil, []BuilderOption{WithSeed(1)}, PlantedPartition(10, 2, 1.5))
	assert.ErrorIs(t, err, ErrInvalidProbability)
}

func TestPlantedPartitionRejectsMissingRNG(t *testing.T) {
	_, err := BuildGraph(nil, nil, PlantedPartition(10, 2, 0.5))
	assert.ErrorIs(t, err, ErrNeedRandSource)
}

func TestPlantedPartitionDeterministicForFixedSeed(t *testing.T) {
	a, err := BuildGraph(nil, []BuilderOption{WithSeed(42)}, PlantedPartition(50, 5, 0.4))
	require.NoError(t, err)
	b, err := BuildGraph(nil, []BuilderOption{WithSeed(42)}, PlantedPartition(50, 5, 0.4))
	require.NoError(t, err)
	assert.Equal(t, len(a.Edges()), len(b.Edges()))
}
