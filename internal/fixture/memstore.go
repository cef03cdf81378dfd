package fixture

import (
	"fmt"
	"path"
	"sort"
)

// MemStore is an in-memory Store for tests. Files maps
// "category/validity/name" to content.
type MemStore struct {
	Files map[string][]byte
}

// List implements Store. Names are returned sorted, mirroring the
// listing order of a real directory.
func (s *MemStore) List(category string, validity Validity) ([]string, error) {
	prefix := category + "/" + string(validity) + "/"
	var names []string
	for key := range s.Files {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			names = append(names, key[len(prefix):])
		}
	}
	sort.Strings(names)
	return names, nil
}

// Path implements Store.
func (s *MemStore) Path(category string, validity Validity, name string) string {
	return path.Join(category, string(validity), name)
}

// Read implements Store.
func (s *MemStore) Read(category string, validity Validity, name string) ([]byte, error) {
	key := s.Path(category, validity, name)
	content, ok := s.Files[key]
	if !ok {
		return nil, fmt.Errorf("fixture %s not found", key)
	}
	return content, nil
}
