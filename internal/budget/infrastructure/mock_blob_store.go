package infrastructure

type MockBlobStore struct {
	Saved     map[string][]byte
	Deleted   []string
	SaveErr   error
	DeleteErr error
}

func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{Saved: map[string][]byte{}}
}

func (m *MockBlobStore) Save(filePath string, data []byte) (string, error) {
	if m.SaveErr != nil {
		return "", m.SaveErr
	}
	m.Saved[filePath] = data
	return filePath, nil
}

func (m *MockBlobStore) Delete(filePath string) error {
	m.Deleted = append(m.Deleted, filePath)
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Saved, filePath)
	return nil
}
