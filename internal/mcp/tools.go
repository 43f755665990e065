package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listVersionsTool defines the list_versions MCP tool.
var listVersionsTool = mcp.NewTool("list_versions",
	mcp.WithDescription("List the documentation versions, latest first, and the release the latest alias points to."),
)

// resolveVersionTool defines the resolve_version MCP tool.
var resolveVersionTool = mcp.NewTool("resolve_version",
	mcp.WithDescription("Work out which documentation version a URL path refers to."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("URL path such as /versions/v19.0.0/guides/assets.html"),
	),
)

// getNavigationTool defines the get_navigation MCP tool.
var getNavigationTool = mcp.NewTool("get_navigation",
	mcp.WithDescription("Get the sidebar navigation (sections and links) for a documentation version."),
	mcp.WithString("version",
		mcp.Description("Version token such as v21.0.0 or latest (default latest)"),
	),
)

// getPageTool defines the get_page MCP tool.
var getPageTool = mcp.NewTool("get_page",
	mcp.WithDescription("Get the markdown source of a documentation page."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Page URL path such as /versions/latest/introduction/installation.html"),
	),
)
