// Package content discovers the markdown pages of one documentation version.
package content

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover returns the slash-separated paths, relative to root, of every file
// matching include and not matching exclude. A missing root yields no pages.
func Discover(root string, include, exclude []string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var pages []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if Published(rel, include, exclude) {
			pages = append(pages, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(pages)
	return pages, nil
}

// Published reports whether the page at relPath is part of the site: it
// matches include and does not match exclude.
func Published(relPath string, include, exclude []string) bool {
	return MatchesInclude(relPath, include) && !MatchesExclude(relPath, exclude)
}

// MatchesInclude returns true if the given relative path matches any of the
// include patterns. If patterns is empty, everything is included.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks if relPath matches any of the given glob patterns.
// It uses doublestar for ** support and also tries the bare file name.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// HTMLPath maps a markdown page to the HTML file it renders to.
func HTMLPath(mdPath string) string {
	if strings.HasSuffix(mdPath, ".md") {
		return strings.TrimSuffix(mdPath, ".md") + ".html"
	}
	return mdPath
}

// MarkdownPath maps a requested HTML path back to its markdown source.
// Directory requests ("" or "guides/") map to their index page.
func MarkdownPath(htmlPath string) string {
	htmlPath = strings.TrimPrefix(htmlPath, "/")
	if htmlPath == "" || strings.HasSuffix(htmlPath, "/") {
		htmlPath += "index.html"
	}
	if strings.HasSuffix(htmlPath, ".html") {
		return strings.TrimSuffix(htmlPath, ".html") + ".md"
	}
	return htmlPath + ".md"
}
