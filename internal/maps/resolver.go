package maps

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoMapsFound indicates the maps directory holds no embeddable files.
// Fatal for the map page only; other pages are unaffected.
var ErrNoMapsFound = errors.New("no map files found")

// ErrMapNotFound indicates the chosen map disappeared between listing and
// reading. Recoverable: the page shows an inline error.
var ErrMapNotFound = errors.New("map file not found")

// Resolver lists and reads pre-rendered map HTML files from a directory
type Resolver struct {
	dir         string
	defaultName string
}

// NewResolver creates a resolver over dir with a preferred default filename
func NewResolver(dir, defaultName string) *Resolver {
	return &Resolver{dir: dir, defaultName: defaultName}
}

// List returns all embeddable markup files in the directory, sorted
// lexicographically
func (r *Resolver) List() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoMapsFound, r.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isMarkupFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMapsFound, r.dir)
	}

	sort.Strings(names)
	return names, nil
}

// Default returns the configured default filename if present in the listing,
// otherwise the first listed file
func (r *Resolver) Default(listing []string) string {
	for _, name := range listing {
		if name == r.defaultName {
			return name
		}
	}
	if len(listing) > 0 {
		return listing[0]
	}
	return ""
}

// Resolve reads the raw HTML text of the named map file
func (r *Resolver) Resolve(name string) (string, error) {
	// the name comes from user input; keep it inside the maps directory
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrMapNotFound, name)
	}
	if !isMarkupFile(name) {
		return "", fmt.Errorf("%w: %q", ErrMapNotFound, name)
	}

	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMapNotFound, name, err)
	}
	return string(data), nil
}

func isMarkupFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	default:
		return false
	}
}
