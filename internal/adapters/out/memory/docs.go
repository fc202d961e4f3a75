// Package memory provides in-memory implementations of the outbound
// repository ports. State lives for the lifetime of the process; every store
// guards its maps with a read-write mutex so handlers and background jobs can
// share it safely.
package memory
