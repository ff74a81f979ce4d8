// Package pgdf implements the pipe-delimited property-graph exchange format
// (PGDF) shared by the node and edge files.
//
// Node file: a concatenation of schema blocks. Each block is one header line
// (column names joined by '|', always starting with "@id|@label") followed
// by the rows of every entity using that schema, values in header order,
// empty string for absent values. There is no global header and no block
// separator beyond the header line itself.
//
// Edge file: one header line "@id|@label|@dir|@out|@in" followed by one row
// per edge: "<edge id>|<label>|T|<source id>|<target id>".
//
// Writers are sequential and buffered; nothing is rewritten in place.
// Readers stream rows through a callback so large files never sit in memory.
package pgdf
