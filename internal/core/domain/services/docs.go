// Package services provides domain services that orchestrate business operations
// across multiple domain entities. It implements workflows that don't naturally
// belong to a single aggregate root.
//
// The package includes:
//   - Recommender: filters the fixed menu catalog by diner criteria and owns
//     the append-only behavioral event log
package services
