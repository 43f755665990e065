package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/docshell/internal/navigation"
)

// ErrPageNotFound is returned when a version has no source for a page.
var ErrPageNotFound = errors.New("page not found")

// Renderer converts the markdown sources under ContentDir/{version}/ to HTML.
type Renderer struct {
	ContentDir string
	md         goldmark.Markdown
}

// Rendered is one converted page.
type Rendered struct {
	Title   string
	Content template.HTML
}

// NewRenderer creates a Renderer reading from contentDir.
func NewRenderer(contentDir string) *Renderer {
	return &Renderer{
		ContentDir: contentDir,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts relPath of the source version. When served under another
// token (the Latest alias), links into the source version are rewritten to it.
func (r *Renderer) Render(source, servedAs navigation.VersionID, relPath string) (Rendered, error) {
	clean := path.Clean("/" + relPath)
	if clean != "/"+relPath || strings.Contains(relPath, "..") {
		return Rendered{}, fmt.Errorf("%w: %s/%s", ErrPageNotFound, source, relPath)
	}
	srcPath := filepath.Join(r.ContentDir, string(source), filepath.FromSlash(relPath))
	src, err := os.ReadFile(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Rendered{}, fmt.Errorf("%w: %s/%s", ErrPageNotFound, source, relPath)
		}
		return Rendered{}, err
	}

	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return Rendered{}, fmt.Errorf("converting markdown: %w", err)
	}

	htmlContent := rewriteMDLinks(buf.String())
	if servedAs != "" && servedAs != source {
		htmlContent = rewriteVersionLinks(htmlContent, source, servedAs)
	}

	return Rendered{
		Title:   extractTitle(string(src), relPath),
		Content: template.HTML(htmlContent),
	}, nil
}

// extractTitle pulls the first # heading from markdown content, or falls back to the filename.
func extractTitle(content, relPath string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return strings.TrimSuffix(filepath.Base(relPath), ".md")
}

// rewriteMDLinks changes .md links in HTML content to .html links.
func rewriteMDLinks(content string) string {
	result := strings.ReplaceAll(content, `.md"`, `.html"`)
	return strings.ReplaceAll(result, `.md#`, `.html#`)
}

// rewriteVersionLinks points absolute links into from at to instead.
func rewriteVersionLinks(content string, from, to navigation.VersionID) string {
	return strings.ReplaceAll(content,
		`"/versions/`+string(from)+`/`,
		`"/versions/`+string(to)+`/`)
}
