// Package storage defines the persistence contracts for battle reference
// content. The sqlite subpackage is the concrete backend.
package storage
