package scenario

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/roverlab/internal/scenario/formats"
)

// ErrNotFound is returned by LoadByID for unknown scenario IDs.
var ErrNotFound = errors.New("scenario not found")

// Loader handles loading scenarios from a file tree.
type Loader struct {
	fsys fs.FS
	Root string
}

// NewLoader creates a loader reading the directory root.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), Root: root}
}

// NewFSLoader creates a loader reading from fsys, e.g. an embed.FS.
func NewFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{fsys: fsys, Root: root}
}

// LoadAll recursively scans and loads all scenario files.
// Files that fail to parse are skipped.
// Returns scenarios sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Scenario, error) {
	scenarios := make([]Scenario, 0)

	err := fs.WalkDir(l.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		sc, err := l.loadFS(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		scenarios = append(scenarios, sc)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].ID < scenarios[j].ID
	})

	return scenarios, nil
}

// LoadFile loads a single scenario file from disk.
func LoadFile(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return parseFile(data, path)
}

// loadFS loads a single scenario file relative to the loader root.
func (l *Loader) loadFS(path string) (Scenario, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return parseFile(data, filepath.Join(l.Root, filepath.FromSlash(path)))
}

func parseFile(data []byte, path string) (Scenario, error) {
	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Scenario{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return fromParsed(parsed, path), nil
}

// LoadByID loads a specific scenario by ID.
func (l *Loader) LoadByID(id string) (Scenario, error) {
	scenarios, err := l.LoadAll()
	if err != nil {
		return Scenario{}, err
	}

	for _, sc := range scenarios {
		if sc.ID == id {
			return sc, nil
		}
	}

	return Scenario{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all scenario IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	scenarios, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(scenarios))
	for i, sc := range scenarios {
		ids[i] = sc.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Scenario, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Scenario{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
