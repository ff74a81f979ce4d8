// Package store ingests PGDF files into SQLite and answers the point and
// label/property queries used to explore a generated graph: node and edge
// lookup by id, edge ids per label, distinct sources/targets per label and
// case-insensitive property search.
//
// Ingestion streams rows through pgdf readers and commits every BatchSize
// rows in its own transaction; each Ingest call is tagged with a batch id
// recorded in the ingests table.
package store
