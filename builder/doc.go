// Package builder provides reusable “functional‐options”‐style building blocks
// for graph constructors. It lives alongside the core package to centralize common configuration, ID schemes, weight distributions,
// and validation logic, keeping implementations DRY, testable, and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID‐scheme, weight function, etc.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Shared constants:
//     – MinCycleNodes.
//     – DefaultEdgeWeight, MinProbability, MaxProbability.
//     – MethodCycle, MethodComplete, … tokens for builderErrorf context.
//
// Guarantees:
//
//   - Vertex insertion is idempotent (AddVertex on an existing ID is a no-op);
//     edge insertion is not: re-running a builder on a simple g returns the core
//     duplicate-edge error.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors (builderErrorf) for invalid build parameters,
//     wrapping context tokens for easy filtering.
//   - Documented algorithmic complexity (O(n), O(n²), O(V+E), etc.) per constructor.
//   - Testable: PlantedPartition has its own impl_planted_partition_test.go; the
//     other constructors are exercised through the descent and end-to-end tests.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
