// Package ingest is the CLI-only CSV adapter: it turns a delimited file
// into the dense [][]float64/[]float64 pair dataset.New expects, dispatching
// string target columns through labelencode. Nothing outside cmd/projectionbox
// imports it.
package ingest
