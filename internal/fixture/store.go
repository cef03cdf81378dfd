// Package fixture maps the (category, validity) directory convention
// to sets of fixture source files.
//
// The on-disk layout is <root>/<category>/<valid|invalid>/<file>.
package fixture

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Validity names the two fixture groups a category owns.
type Validity string

// Fixture group directories.
const (
	Valid   Validity = "valid"
	Invalid Validity = "invalid"
)

// DefaultPatterns select the file types considered fixtures.
var DefaultPatterns = []string{"*.ts", "*.tsx"}

// Store lists and reads fixture files for a (category, validity)
// pair. Implementations must treat a missing directory as an empty
// group, not an error.
type Store interface {
	// List returns the fixture file names for the group, in the
	// natural order of the underlying storage.
	List(category string, validity Validity) ([]string, error)

	// Path returns the path for a listed file, suitable for handing
	// to the lint engine.
	Path(category string, validity Validity, name string) string

	// Read returns the raw content of a listed file.
	Read(category string, validity Validity, name string) ([]byte, error)
}

// DirStore reads fixtures from a directory tree rooted at Root.
// Only plain files matching Patterns are listed; subdirectories are
// not recursed into.
type DirStore struct {
	Root string

	// Patterns filter entries by base name (doublestar syntax).
	// Empty means DefaultPatterns.
	Patterns []string
}

// List implements Store. A missing group directory yields an empty
// list and no error.
func (s *DirStore) List(category string, validity Validity) ([]string, error) {
	dir := filepath.Join(s.Root, category, string(validity))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if s.matches(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Path implements Store.
func (s *DirStore) Path(category string, validity Validity, name string) string {
	return filepath.Join(s.Root, category, string(validity), name)
}

// Read implements Store.
func (s *DirStore) Read(category string, validity Validity, name string) ([]byte, error) {
	return os.ReadFile(s.Path(category, validity, name))
}

func (s *DirStore) matches(name string) bool {
	patterns := s.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	for _, p := range patterns {
		matched, err := doublestar.Match(p, name)
		if err == nil && matched {
			return true
		}
	}
	return false
}
