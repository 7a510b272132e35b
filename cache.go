package fincast

// Cache memoizes projection results across Planner calls. It is an explicit,
// injected collaborator: the zero-value Planner has none and recomputes
// everything, correctness never depends on a cache being present or fresh.
//
// Keys are derived from the full projection inputs, values are decimal
// strings, so any string store works. The rediscache subpackage provides a
// Redis-backed implementation.
type Cache interface {
	Get(key string) (value string, ok bool)
	Set(key, value string) error
}
