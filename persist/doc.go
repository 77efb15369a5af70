// Package persist round-trips a fitted model (feature map, default
// value, and label-encoder mapping) to bytes, so cmd/projectionbox's fit
// and predict subcommands can run as separate process invocations. The
// wire format is MessagePack; float64 bin-edge values round-trip exactly
// since msgpack encodes IEEE-754 doubles natively.
package persist
