package shell

import (
	"fmt"

	"github.com/ziadkadry99/docshell/internal/navigation"
)

// Navigator issues navigation requests on behalf of the shell, e.g. an HTTP
// redirect or a client-side location change.
type Navigator interface {
	Navigate(path string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string) error

// Navigate calls f(path).
func (f NavigatorFunc) Navigate(path string) error { return f(path) }

// State is what the shell renders from.
type State struct {
	ActiveVersion navigation.VersionID
	ActiveRoutes  navigation.Tree
	SidebarOpen   bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithProduct sets the product name used in page titles.
func WithProduct(name string) Option {
	return func(s *Shell) { s.product = name }
}

// WithLogo sets the image shown in the mobile top bar.
func WithLogo(path string) Option {
	return func(s *Shell) { s.logo = path }
}

// Shell owns the navigation state of one rendered page. It is not safe for
// concurrent use; servers build one per request.
type Shell struct {
	resolver  *navigation.Resolver
	nav       Navigator
	product   string
	logo      string
	state     State
	listeners map[int]func(State)
	nextID    int
}

// Mount creates a shell for the page at pathname. The version is resolved
// from the path once; the sidebar starts closed.
func Mount(pathname string, r *navigation.Resolver, nav Navigator, opts ...Option) *Shell {
	s := &Shell{
		resolver:  r,
		nav:       nav,
		product:   "Expo",
		listeners: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setActive(r.Resolve(pathname))
	return s
}

// State returns the current state.
func (s *Shell) State() State { return s.state }

// Versions lists the versions offered by the selector.
func (s *Shell) Versions() []navigation.VersionID { return s.resolver.Known() }

// Product is the name used in titles.
func (s *Shell) Product() string { return s.product }

// SetVersion switches the active version and navigates to its index page.
// The state changes even if navigation fails; the error is returned as is.
func (s *Shell) SetVersion(v navigation.VersionID) error {
	s.setActive(v)
	s.notify()
	if s.nav == nil {
		return nil
	}
	return s.nav.Navigate(navigation.IndexPath(v))
}

// setActive is the only writer of ActiveVersion and ActiveRoutes.
func (s *Shell) setActive(v navigation.VersionID) {
	s.state.ActiveVersion = v
	s.state.ActiveRoutes = s.resolver.LoadNavigationTree(v)
}

// OpenSidebar shows the mobile overlay menu.
func (s *Shell) OpenSidebar() { s.SetSidebarOpen(true) }

// CloseSidebar hides the mobile overlay menu.
func (s *Shell) CloseSidebar() { s.SetSidebarOpen(false) }

// SetSidebarOpen sets the overlay visibility.
func (s *Shell) SetSidebarOpen(open bool) {
	if s.state.SidebarOpen == open {
		return
	}
	s.state.SidebarOpen = open
	s.notify()
}

// ScrollLocked reports whether document scrolling is disabled, which is the
// case exactly while the overlay is open.
func (s *Shell) ScrollLocked() bool { return s.state.SidebarOpen }

// Overflow is the CSS overflow value for <html> and <body>.
func (s *Shell) Overflow() string {
	if s.ScrollLocked() {
		return "hidden"
	}
	return "visible"
}

// Title is the default document title.
func (s *Shell) Title() string {
	return fmt.Sprintf("%s %s documentation", s.product, s.state.ActiveVersion)
}

// TitleTemplate wraps a page title; %s is replaced by the page's own title.
func (s *Shell) TitleTemplate() string {
	return "%s | " + s.Title()
}

// PageTitle applies TitleTemplate to title, or returns Title when it is empty.
func (s *Shell) PageTitle(title string) string {
	if title == "" {
		return s.Title()
	}
	return fmt.Sprintf(s.TitleTemplate(), title)
}

// OnChange registers fn to run after every state change. The returned func
// removes it.
func (s *Shell) OnChange(fn func(State)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Unmount drops every registered listener.
func (s *Shell) Unmount() {
	clear(s.listeners)
}

func (s *Shell) notify() {
	for _, fn := range s.listeners {
		fn(s.state)
	}
}
