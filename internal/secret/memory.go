package secret

// MemoryStore is an in-memory SecretStore used in tests. It mimics the
// keyring contract, including ErrNotFound on missing entries.
type MemoryStore struct {
	entries map[string]map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]map[string]string)}
}

// Set stores value under the (service, key) pair.
func (s *MemoryStore) Set(service, key, value string) error {
	if s.entries[service] == nil {
		s.entries[service] = make(map[string]string)
	}
	s.entries[service][key] = value
	return nil
}

// Get returns the value for the (service, key) pair, or ErrNotFound.
func (s *MemoryStore) Get(service, key string) (string, error) {
	if svc, ok := s.entries[service]; ok {
		if v, ok := svc[key]; ok {
			return v, nil
		}
	}
	return "", ErrNotFound
}

// Delete removes the (service, key) pair, or returns ErrNotFound.
func (s *MemoryStore) Delete(service, key string) error {
	if svc, ok := s.entries[service]; ok {
		if _, ok := svc[key]; ok {
			delete(svc, key)
			return nil
		}
	}
	return ErrNotFound
}
