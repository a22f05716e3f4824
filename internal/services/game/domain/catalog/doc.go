// Package catalog holds the immutable reference content battles are built
// from: NPC templates with base stats and movesets, and move definitions.
//
// A Catalog is constructed once, validated, and then only read. Lookups are
// case-insensitive and return NPC_NOT_FOUND or MOVE_NOT_FOUND domain errors
// for unknown identifiers.
package catalog
