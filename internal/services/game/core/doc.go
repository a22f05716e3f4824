// Package core holds transport-agnostic helpers shared by the game service.
//
//   - filter: AIP-160 filter parsing and SQL translation for catalog listings
package core
