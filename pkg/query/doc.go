// Package query turns one "find all raw matches" primitive into the full
// family of query variants with uniform multiplicity enforcement and error
// formatting: QueryAll/Query (zero matches allowed), GetAll/Get (zero matches
// is an error), and FindAll/Find (asynchronous, polling the synchronous check
// until success or timeout). It also defines the configuration threaded into
// every entry point, the per-call options, and the error taxonomy shared by
// all families.
package query
