package badgerstore

// NewMemoryStores creates in-memory catalog and profile stores for
// testing. Returns store, profileStore, backend, and error.
// Caller must close both stores and the backend when done.
func NewMemoryStores() (*Store, *ProfileStore, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := NewStore(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	profiles, err := NewProfileStore(backend)
	if err != nil {
		store.Close()
		backend.Close()
		return nil, nil, nil, err
	}

	return store, profiles, backend, nil
}
