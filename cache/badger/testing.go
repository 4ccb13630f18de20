package badger

// OpenMemory opens an in-memory assessment cache.
// Intended for tests; nothing is persisted.
func OpenMemory() (*Cache, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}
	return newCache(backend), nil
}
