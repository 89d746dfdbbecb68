package mocks

// MockTokenHasher implements domain.TokenHasher for testing
type MockTokenHasher struct {
	HashFunc    func(token string) (string, error)
	CompareFunc func(hash, token string) bool
}

// NewMockTokenHasher creates a new MockTokenHasher with default behaviors
func NewMockTokenHasher() *MockTokenHasher {
	return &MockTokenHasher{}
}

// Hash hashes a token for storage
func (m *MockTokenHasher) Hash(token string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(token)
	}
	// Default behavior: deterministic fake hash
	return "tokenhash_" + token, nil
}

// Compare checks a presented token against a stored hash
func (m *MockTokenHasher) Compare(hash, token string) bool {
	if m.CompareFunc != nil {
		return m.CompareFunc(hash, token)
	}
	// Default behavior: match against the deterministic fake hash
	return hash == "tokenhash_"+token
}
