package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/docshell/internal/content"
	"github.com/ziadkadry99/docshell/internal/navigation"
)

// handleListVersions lists the selectable versions.
func (s *Server) handleListVersions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, v := range s.resolver.Known() {
		sb.WriteString("- " + string(v))
		if v == navigation.Latest {
			sb.WriteString(" (" + string(s.resolver.LatestConcrete()) + ")")
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleResolveVersion maps a URL path to its version.
func (s *Server) handleResolveVersion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	v := s.resolver.Resolve(path)
	text := fmt.Sprintf("Version: %s\nSource: %s\nIndex: %s\n", v, s.resolver.ConcreteFor(v), navigation.IndexPath(v))
	return mcp.NewToolResultText(text), nil
}

// handleGetNavigation returns a version's sidebar. Unrecognised versions get
// the newest release's tree.
func (s *Server) handleGetNavigation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v := navigation.VersionID(request.GetString("version", string(navigation.Latest)))
	tree := s.resolver.LoadNavigationTree(v)
	if len(tree) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no navigation data for %s", v)), nil
	}
	return mcp.NewToolResultText(formatTree(v, s.resolver.ConcreteFor(v), tree)), nil
}

// handleGetPage returns the markdown source behind a page URL.
func (s *Server) handleGetPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	v, rel, ok := splitPagePath(path)
	if !ok || !s.resolver.IsKnown(v) {
		return mcp.NewToolResultError(fmt.Sprintf("%q is not a documentation page path", path)), nil
	}

	source := s.resolver.ConcreteFor(v)
	md := content.MarkdownPath(rel)
	if !content.Published(md, s.include, s.exclude) {
		return mcp.NewToolResultError(fmt.Sprintf("no page at %s", path)), nil
	}
	data, err := os.ReadFile(filepath.Join(s.contentDir, string(source), filepath.FromSlash(md)))
	if err != nil {
		if os.IsNotExist(err) {
			return mcp.NewToolResultError(fmt.Sprintf("no page at %s", path)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to read page: %v", err)), nil
	}

	text := string(data)
	if v != source {
		text = strings.ReplaceAll(text, "/versions/"+string(source)+"/", "/versions/"+string(v)+"/")
	}
	return mcp.NewToolResultText(text), nil
}

// splitPagePath splits /versions/{version}/{rest} into its parts.
func splitPagePath(path string) (navigation.VersionID, string, bool) {
	rest, ok := strings.CutPrefix(path, "/versions/")
	if !ok || strings.Contains(rest, "..") {
		return "", "", false
	}
	version, rel, _ := strings.Cut(rest, "/")
	if version == "" {
		return "", "", false
	}
	return navigation.VersionID(version), rel, true
}

// formatTree renders a navigation tree as an indented markdown list.
func formatTree(v, source navigation.VersionID, tree navigation.Tree) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Navigation for %s", v)
	if source != v {
		fmt.Fprintf(&sb, " (from %s)", source)
	}
	sb.WriteString("\n")

	for _, section := range tree {
		fmt.Fprintf(&sb, "\n## %s\n%s\n", section.Title, section.Index)
		for _, link := range section.Links {
			fmt.Fprintf(&sb, "- %s: %s\n", link.Title, link.URL)
		}
	}
	return sb.String()
}
