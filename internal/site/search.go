package site

import (
	"bufio"
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ziadkadry99/docshell/internal/content"
)

// maxSearchContent caps the indexed body of a page, in bytes.
const maxSearchContent = 2000

// SearchEntry represents a single searchable page in the documentation.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex reads pages (relative to dir) and builds a search index.
// Entry paths are absolute URLs under urlPrefix.
func BuildSearchIndex(dir string, pages []string, urlPrefix string) ([]SearchEntry, error) {
	entries := make([]SearchEntry, 0, len(pages))
	for _, rel := range pages {
		entry, err := parseMarkdownForSearch(filepath.Join(dir, filepath.FromSlash(rel)), rel)
		if err != nil {
			return nil, err
		}
		entry.Path = path.Join(urlPrefix, content.HTMLPath(rel))
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseMarkdownForSearch extracts title, summary, and content from a markdown file.
func parseMarkdownForSearch(filePath, relPath string) (SearchEntry, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return SearchEntry{}, err
	}
	defer f.Close()

	var entry SearchEntry
	scanner := bufio.NewScanner(f)
	var lines []string
	foundTitle := false
	foundSummary := false
	inFence := false

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence || trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)

		if !foundTitle && strings.HasPrefix(line, "# ") {
			entry.Title = strings.TrimPrefix(line, "# ")
			foundTitle = true
			continue
		}

		if foundTitle && !foundSummary && !strings.HasPrefix(line, "#") {
			entry.Summary = trimmed
			foundSummary = true
		}
	}

	if err := scanner.Err(); err != nil {
		return SearchEntry{}, err
	}

	text := strings.Join(lines, " ")
	if len(text) > maxSearchContent {
		n := maxSearchContent
		for n > 0 && !utf8.RuneStart(text[n]) {
			n--
		}
		text = text[:n]
	}
	entry.Content = text

	if entry.Title == "" {
		entry.Title = relPath
	}

	return entry, nil
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
