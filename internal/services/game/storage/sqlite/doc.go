// Package sqlite implements the content store on SQLite.
//
// The database holds the reference NPCs and moves that battles are built
// from. It is written by the catalog importer and read at service startup;
// schema history lives in embedded migrations applied on open.
package sqlite
