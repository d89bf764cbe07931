package b64

// Hooks are lightweight callbacks for high-signal store events.
// Implementations MUST be cheap and non-blocking; wrap slow ones with
// hooks/async.
type Hooks interface {
	// A stored entry could not be read back and was deleted.
	// reason ∈ {"armor", "frame", "value_decode"}
	CorruptEntry(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)

	// Provider returned an error. op ∈ {"get", "set", "del"}
	ProviderError(op, storageKey string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) CorruptEntry(string, string)         {}
func (NopHooks) ProviderSetRejected(string)          {}
func (NopHooks) ProviderError(string, string, error) {}
