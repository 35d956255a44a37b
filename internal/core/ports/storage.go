package ports

// KeyValueStore is the durable string-keyed store the session is mirrored
// into. Implementations must apply SetAll atomically: after a crash either
// all given keys are visible or none of them are.
type KeyValueStore interface {
	// Get returns the value for key and whether the key is present.
	Get(key string) (string, bool, error)
	// SetAll stores every given pair in a single atomic write.
	SetAll(values map[string]string) error
	// DeleteAll removes the given keys; absent keys are not an error.
	DeleteAll(keys ...string) error
}
