// Package domain defines the core business entities for bucketlist.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Category: One of the six fixed life categories
//   - FormState: The entries a user has typed, 20 per category
//   - Section: A category as it appears in an exported document
//   - AppSettings: Export and list configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
