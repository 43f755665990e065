package navigation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoNavigationData is returned when no version has a navigation file.
var ErrNoNavigationData = errors.New("no navigation data")

// DataFileName is the conventional file holding v's navigation: the major
// component of a release ("v21.0.0" -> "v21.yaml"), or "unversioned.yaml".
func DataFileName(v VersionID) string {
	if v == Latest || v == "" {
		return ""
	}
	major, _, _ := strings.Cut(string(v), ".")
	return major + ".yaml"
}

// Loader reads navigation files from a directory.
type Loader struct {
	Dir string
	// Files overrides DataFileName per version.
	Files map[VersionID]string
}

// Path returns the file backing v.
func (l Loader) Path(v VersionID) string {
	if name, ok := l.Files[v]; ok && name != "" {
		return filepath.Join(l.Dir, name)
	}
	return filepath.Join(l.Dir, DataFileName(v))
}

// LoadTree reads and parses v's navigation file.
func (l Loader) LoadTree(v VersionID) (Tree, error) {
	path := l.Path(v)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading navigation for %s: %w", v, err)
	}
	var tree Tree
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tree, nil
}

// LoadAll loads every non-alias version in versions.
func (l Loader) LoadAll(versions []VersionID) (map[VersionID]Tree, error) {
	trees := make(map[VersionID]Tree, len(versions))
	for _, v := range versions {
		if v == Latest {
			continue
		}
		tree, err := l.LoadTree(v)
		if err != nil {
			return nil, err
		}
		trees[v] = tree
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoNavigationData, l.Dir)
	}
	return trees, nil
}

// Watches reports whether a changed file belongs to the navigation data set.
func (l Loader) Watches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
