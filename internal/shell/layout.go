package shell

import (
	"html/template"
	"io"

	"github.com/ziadkadry99/docshell/internal/navigation"
)

// Page is the content wrapped by the shell.
type Page struct {
	// Title is the page's own title; the document title is built from it.
	Title string
	// Path is the request path, used to highlight the current sidebar link.
	Path    string
	Content template.HTML
	// Static omits the no-JavaScript form fallbacks, which need a server.
	Static bool
	// LiveReload makes the page reconnect to the live reload socket.
	LiveReload bool
}

// layoutData holds the data passed to the layout template.
type layoutData struct {
	Title         string
	Product       string
	Logo          string
	ActiveVersion navigation.VersionID
	Versions      []navigation.VersionID
	Routes        navigation.Tree
	SidebarOpen   bool
	Overflow      string
	HomeHref      string
	Path          string
	Content       template.HTML
	Static        bool
	LiveReload    bool
}

// IsActive reports whether url is the page being rendered.
func (d *layoutData) IsActive(url string) bool {
	return url == d.Path
}

type sidebarData struct {
	ID     string
	Mobile bool
	L      *layoutData
}

var layoutTmpl = template.Must(template.New("layout").Funcs(template.FuncMap{
	"sidebar": func(id string, mobile bool, d *layoutData) sidebarData {
		return sidebarData{ID: id, Mobile: mobile, L: d}
	},
}).Parse(layoutTemplate))

// Render writes page wrapped in the shell's layout.
func (s *Shell) Render(w io.Writer, page Page) error {
	data := &layoutData{
		Title:         s.PageTitle(page.Title),
		Product:       s.product,
		Logo:          s.logo,
		ActiveVersion: s.state.ActiveVersion,
		Versions:      s.Versions(),
		Routes:        s.state.ActiveRoutes,
		SidebarOpen:   s.state.SidebarOpen,
		Overflow:      s.Overflow(),
		HomeHref:      navigation.IndexPath(s.state.ActiveVersion),
		Path:          page.Path,
		Content:       page.Content,
		Static:        page.Static,
		LiveReload:    page.LiveReload,
	}
	return layoutTmpl.Execute(w, data)
}

// Stylesheet is served as /assets/style.css.
func Stylesheet() string { return cssContent }

// Script is served as /assets/script.js.
func Script() string { return jsContent }
