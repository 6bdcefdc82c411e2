// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomRegular is the canonical name for the RandomRegular constructor.
	MethodRandomRegular = "RandomRegular"
	// MethodPlantedPartition is the canonical name for the PlantedPartition constructor.
	MethodPlantedPartition = "PlantedPartition"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid ring without loops or multi-edges.
// Complexity impact: Cycle builds O(n) edges; n >= MinCycleNodes.
const MinCycleNodes = 3

//-----------------------------------------------------------------------------
// Default Weights and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// MinProbability is the lower bound for the probability parameter p in
// RandomSparse (Erdős–Rényi) graph construction, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for the probability parameter p in
// RandomSparse construction, inclusive.
const MaxProbability = 1.0

// MaxPartition .
const MaxPartition = 1
