package site

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ziadkadry99/docshell/internal/content"
	"github.com/ziadkadry99/docshell/internal/navigation"
	"github.com/ziadkadry99/docshell/internal/progress"
	"github.com/ziadkadry99/docshell/internal/shell"
)

// redirectPage sends visitors of the site root to the latest docs.
const redirectPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta http-equiv="refresh" content="0; url=%[1]s">
  <link rel="canonical" href="%[1]s">
</head>
<body><a href="%[1]s">%[1]s</a></body>
</html>
`

// SiteGenerator renders every known version, including the Latest alias,
// into a static site under OutputDir.
type SiteGenerator struct {
	Resolver  *navigation.Resolver
	Renderer  *Renderer
	OutputDir string
	Product   string
	Logo      string
	Include   []string
	Exclude   []string
	Reporter  progress.Reporter
	Logger    *zap.Logger
}

// NewSiteGenerator creates a SiteGenerator writing to outputDir.
func NewSiteGenerator(resolver *navigation.Resolver, renderer *Renderer, outputDir, product string) *SiteGenerator {
	return &SiteGenerator{
		Resolver:  resolver,
		Renderer:  renderer,
		OutputDir: outputDir,
		Product:   product,
		Include:   []string{"**/*.md"},
		Reporter:  progress.Nop{},
		Logger:    zap.NewNop(),
	}
}

// pageJob is one page of one version.
type pageJob struct {
	version navigation.VersionID
	source  navigation.VersionID
	relPath string
}

// Generate builds the full static site. Returns the number of pages generated.
func (g *SiteGenerator) Generate(ctx context.Context) (int, error) {
	var jobs []pageJob
	for _, v := range g.Resolver.Known() {
		source := g.Resolver.ConcreteFor(v)
		sourceDir := filepath.Join(g.Renderer.ContentDir, string(source))
		pages, err := content.Discover(sourceDir, g.Include, g.Exclude)
		if err != nil {
			return 0, fmt.Errorf("discovering pages for %s: %w", v, err)
		}
		if len(pages) == 0 {
			g.Logger.Warn("version has no pages", zap.String("version", string(v)), zap.String("dir", sourceDir))
			continue
		}
		for _, p := range pages {
			jobs = append(jobs, pageJob{version: v, source: source, relPath: p})
		}

		entries, err := BuildSearchIndex(sourceDir, pages, path.Dir(navigation.IndexPath(v)))
		if err != nil {
			return 0, fmt.Errorf("building search index for %s: %w", v, err)
		}
		versionDir := filepath.Join(g.OutputDir, "versions", string(v))
		if err := os.MkdirAll(versionDir, 0o755); err != nil {
			return 0, err
		}
		if err := WriteSearchIndex(entries, filepath.Join(versionDir, "search-index.json")); err != nil {
			return 0, fmt.Errorf("writing search index for %s: %w", v, err)
		}
	}

	if len(jobs) == 0 {
		return 0, fmt.Errorf("no markdown pages found in %s", g.Renderer.ContentDir)
	}

	if err := g.writeAssets(); err != nil {
		return 0, err
	}

	g.Reporter.Start(len(jobs))
	defer g.Reporter.Finish()

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := g.renderPage(job); err != nil {
			return i, fmt.Errorf("rendering %s/%s: %w", job.version, job.relPath, err)
		}
		g.Reporter.Update(i+1, string(job.version)+"/"+job.relPath)
	}

	g.Logger.Info("site generated",
		zap.String("output", g.OutputDir),
		zap.Int("pages", len(jobs)),
		zap.Int("versions", len(g.Resolver.Known())))
	return len(jobs), nil
}

// renderPage converts a single markdown file to an HTML page wrapped in the shell.
func (g *SiteGenerator) renderPage(job pageJob) error {
	page, err := g.Renderer.Render(job.source, job.version, job.relPath)
	if err != nil {
		return err
	}

	htmlRel := content.HTMLPath(job.relPath)
	urlPath := path.Join("/versions", string(job.version), htmlRel)
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(urlPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	s := shell.Mount(urlPath, g.Resolver, nil, shell.WithProduct(g.Product), shell.WithLogo(g.Logo))
	defer s.Unmount()

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return s.Render(f, shell.Page{
		Title:   page.Title,
		Path:    urlPath,
		Content: page.Content,
		Static:  true,
	})
}

// writeAssets writes the stylesheet, script and root redirect.
func (g *SiteGenerator) writeAssets() error {
	assetsDir := filepath.Join(g.OutputDir, "assets")
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(assetsDir, "style.css"), []byte(shell.Stylesheet()), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(assetsDir, "script.js"), []byte(shell.Script()), 0o644); err != nil {
		return err
	}
	redirect := fmt.Sprintf(redirectPage, navigation.IndexPath(navigation.Latest))
	return os.WriteFile(filepath.Join(g.OutputDir, "index.html"), []byte(redirect), 0o644)
}
