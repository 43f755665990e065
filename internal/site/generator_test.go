package site

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ziadkadry99/docshell/internal/navigation"
)

const (
	testDataDir    = "../../testdata/site/data"
	testContentDir = "../../testdata/site/content"
)

func testResolver(t *testing.T) *navigation.Resolver {
	t.Helper()
	versions := []navigation.VersionID{"v21.0.0", "v19.0.0"}
	trees, err := navigation.Loader{Dir: testDataDir}.LoadAll(versions)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return navigation.NewResolver(navigation.NewCatalog(trees), navigation.Options{Versions: versions})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestRenderConcrete(t *testing.T) {
	r := NewRenderer(testContentDir)
	page, err := r.Render("v19.0.0", "v19.0.0", "introduction/installation.md")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if page.Title != "Installation" {
		t.Errorf("Title = %q, want Installation", page.Title)
	}
	if !strings.Contains(string(page.Content), `id="installation"`) {
		t.Errorf("expected an auto heading ID:\n%s", page.Content)
	}
}

func TestRenderLatestAliasRewritesLinks(t *testing.T) {
	r := NewRenderer(testContentDir)
	page, err := r.Render("v21.0.0", navigation.Latest, "index.md")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(page.Content)
	if !strings.Contains(html, `href="/versions/latest/introduction/installation.html"`) {
		t.Errorf("link not rewritten to latest:\n%s", html)
	}
	if strings.Contains(html, `href="/versions/v21.0.0/`) {
		t.Errorf("link into v21.0.0 left in latest page:\n%s", html)
	}
}

func TestRenderMissingPage(t *testing.T) {
	r := NewRenderer(testContentDir)
	_, err := r.Render("v19.0.0", "v19.0.0", "nope.md")
	if !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("error = %v, want ErrPageNotFound", err)
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		content string
		relPath string
		want    string
	}{
		{"# Hello World\n\nSome text", "hello.md", "Hello World"},
		{"No heading here", "guides/assets.md", "assets"},
		{"## Only H2\n# Main Title", "x.md", "Main Title"},
	}
	for _, tt := range tests {
		if got := extractTitle(tt.content, tt.relPath); got != tt.want {
			t.Errorf("extractTitle(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func TestRewriteMDLinks(t *testing.T) {
	in := `<a href="assets.md">x</a> <a href="installation.md#expo-cli">y</a>`
	want := `<a href="assets.html">x</a> <a href="installation.html#expo-cli">y</a>`
	if got := rewriteMDLinks(in); got != want {
		t.Errorf("rewriteMDLinks() = %q, want %q", got, want)
	}
}

func TestBuildSearchIndex(t *testing.T) {
	dir := filepath.Join(testContentDir, "v19.0.0")
	entries, err := BuildSearchIndex(dir, []string{"index.md", "guides/assets.md"}, "/versions/v19.0.0")
	if err != nil {
		t.Fatalf("BuildSearchIndex: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Path != "/versions/v19.0.0/index.html" {
		t.Errorf("Path = %q", entries[0].Path)
	}
	if entries[1].Path != "/versions/v19.0.0/guides/assets.html" {
		t.Errorf("Path = %q", entries[1].Path)
	}
	if entries[0].Title == "" || entries[0].Summary == "" {
		t.Errorf("expected title and summary, got %+v", entries[0])
	}
}

func TestParseMarkdownForSearchKeepsRunesWhole(t *testing.T) {
	// "# T " joins the body, so the multi-byte runes straddle the cap.
	body := strings.Repeat("a", maxSearchContent-5-len("# T ")) + strings.Repeat("é", 10)
	file := filepath.Join(t.TempDir(), "page.md")
	if err := os.WriteFile(file, []byte("# T\n\n"+body+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	entry, err := parseMarkdownForSearch(file, "page.md")
	if err != nil {
		t.Fatalf("parseMarkdownForSearch: %v", err)
	}
	if !utf8.ValidString(entry.Content) {
		t.Error("content is not valid UTF-8")
	}
	if n := len(entry.Content); n > maxSearchContent || n < maxSearchContent-1 {
		t.Errorf("len(content) = %d", n)
	}
	if !strings.HasSuffix(entry.Content, "é") {
		t.Errorf("content should end on a whole rune: %q", entry.Content[len(entry.Content)-4:])
	}
}

func TestGenerate(t *testing.T) {
	out := t.TempDir()
	g := NewSiteGenerator(testResolver(t), NewRenderer(testContentDir), out, "Expo")
	g.Exclude = []string{"**/drafts/**"}

	n, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// latest (mirrors v21) + v21 + v19, three pages each.
	if n != 9 {
		t.Errorf("Generate() = %d pages, want 9", n)
	}

	for _, p := range []string{
		"index.html",
		"assets/style.css",
		"assets/script.js",
		"versions/latest/index.html",
		"versions/latest/search-index.json",
		"versions/v21.0.0/introduction/installation.html",
		"versions/v19.0.0/guides/assets.html",
	} {
		if _, err := os.Stat(filepath.Join(out, p)); err != nil {
			t.Errorf("missing %s: %v", p, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "versions/v21.0.0/drafts/wip.html")); err == nil {
		t.Error("excluded draft was rendered")
	}

	root := readFile(t, filepath.Join(out, "index.html"))
	if !strings.Contains(root, "/versions/latest/index.html") {
		t.Errorf("root page should redirect to latest:\n%s", root)
	}

	latest := readFile(t, filepath.Join(out, "versions/latest/index.html"))
	if !strings.Contains(latest, `<option value="latest" selected>`) {
		t.Error("latest page should select the latest option")
	}
	if strings.Contains(latest, `"/versions/v21.0.0/`) {
		t.Error("latest page links into v21.0.0")
	}

	v19 := readFile(t, filepath.Join(out, "versions/v19.0.0/index.html"))
	if !strings.Contains(v19, `<option value="v19.0.0" selected>`) {
		t.Error("v19 page should select v19.0.0")
	}
	if !strings.Contains(v19, `href="/versions/v19.0.0/introduction/installation.html"`) {
		t.Error("v19 sidebar should link into v19.0.0")
	}

	var entries []SearchEntry
	if err := json.Unmarshal([]byte(readFile(t, filepath.Join(out, "versions/latest/search-index.json"))), &entries); err != nil {
		t.Fatalf("parsing search index: %v", err)
	}
	for _, e := range entries {
		if !strings.HasPrefix(e.Path, "/versions/latest/") {
			t.Errorf("latest search entry path = %q", e.Path)
		}
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewSiteGenerator(testResolver(t), NewRenderer(testContentDir), t.TempDir(), "Expo")
	if _, err := g.Generate(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate() error = %v, want context.Canceled", err)
	}
}

func TestGenerateNoContent(t *testing.T) {
	g := NewSiteGenerator(testResolver(t), NewRenderer(t.TempDir()), t.TempDir(), "Expo")
	if _, err := g.Generate(context.Background()); err == nil {
		t.Fatal("expected an error when no pages exist")
	}
}

func TestRenderRejectsTraversal(t *testing.T) {
	r := NewRenderer(testContentDir)
	for _, rel := range []string{"../v21.0.0/index.md", "guides/../../x.md", "./index.md"} {
		if _, err := r.Render("v19.0.0", "v19.0.0", rel); !errors.Is(err, ErrPageNotFound) {
			t.Errorf("Render(%q) error = %v, want ErrPageNotFound", rel, err)
		}
	}
}
