package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/docshell/internal/content"
	"github.com/ziadkadry99/docshell/internal/navigation"
	"github.com/ziadkadry99/docshell/internal/session"
	"github.com/ziadkadry99/docshell/internal/shell"
	"github.com/ziadkadry99/docshell/internal/site"
)

// sessionCookie carries the shell session ID.
const sessionCookie = "docshell_session"

func registerAssetRoutes(r chi.Router) {
	r.Get("/assets/style.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(shell.Stylesheet()))
	})
	r.Get("/assets/script.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Write([]byte(shell.Script()))
	})
}

func (s *Server) registerShellRoutes(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, navigation.IndexPath(navigation.Latest), http.StatusFound)
	})
	r.Get("/versions/{version}", func(w http.ResponseWriter, r *http.Request) {
		v := navigation.VersionID(chi.URLParam(r, "version"))
		http.Redirect(w, r, navigation.IndexPath(v), http.StatusMovedPermanently)
	})
	r.Get("/versions/{version}/*", s.handlePage)
	r.Post("/shell/version", s.handleSetVersion)
	r.Post("/shell/menu", s.handleMenu)
}

func (s *Server) registerAPIRoutes(r chi.Router) {
	r.Get("/api/versions", s.handleListVersions)
	r.Get("/api/navigation/{version}", s.handleNavigation)
	r.Get("/api/resolve", s.handleResolve)
}

func (s *Server) shellOptions() []shell.Option {
	return []shell.Option{shell.WithProduct(s.cfg.Product), shell.WithLogo(s.cfg.Logo)}
}

// handlePage renders one documentation page inside the shell. A sidebar
// opened through the menu form applies to the next page rendered only.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	version := navigation.VersionID(chi.URLParam(r, "version"))
	if !s.resolver.IsKnown(version) {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}

	rel := content.MarkdownPath(chi.URLParam(r, "*"))
	if !content.Published(rel, s.cfg.Include, s.cfg.Exclude) {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	page, err := s.renderer.Render(s.resolver.ConcreteFor(version), version, rel)
	if errors.Is(err, site.ErrPageNotFound) {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("rendering page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	sh := shell.Mount(r.URL.Path, s.resolver, nil, s.shellOptions()...)
	defer sh.Unmount()

	sess := s.currentSession(r)
	sh.SetSidebarOpen(sess.SidebarOpen)
	sess.ActiveVersion = sh.State().ActiveVersion
	sess.SidebarOpen = false

	var buf bytes.Buffer
	err = sh.Render(&buf, shell.Page{
		Title:      page.Title,
		Path:       r.URL.Path,
		Content:    page.Content,
		LiveReload: s.cfg.DevMode,
	})
	if err != nil {
		s.logger.Error("rendering layout", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	s.storeSession(w, r, sess)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleSetVersion is the no-JavaScript version picker.
func (s *Server) handleSetVersion(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	v := navigation.VersionID(r.PostFormValue("version"))
	if !s.resolver.IsKnown(v) {
		http.Error(w, fmt.Sprintf("unknown version %q", v), http.StatusBadRequest)
		return
	}

	sess := s.currentSession(r)
	from := "/"
	if sess.ActiveVersion != "" {
		from = navigation.IndexPath(sess.ActiveVersion)
	}

	var target string
	sh := shell.Mount(from, s.resolver, shell.NavigatorFunc(func(path string) error {
		target = path
		return nil
	}), s.shellOptions()...)
	defer sh.Unmount()

	if err := sh.SetVersion(v); err != nil {
		s.logger.Error("setting version", zap.String("version", string(v)), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	sess.ActiveVersion = sh.State().ActiveVersion
	s.storeSession(w, r, sess)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// handleMenu is the no-JavaScript sidebar toggle.
func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	open, err := strconv.ParseBool(r.PostFormValue("open"))
	if err != nil {
		http.Error(w, "open must be true or false", http.StatusBadRequest)
		return
	}

	sess := s.currentSession(r)
	ret := returnPath(r.PostFormValue("return"), sess.ActiveVersion)
	sess.ActiveVersion = s.resolver.Resolve(ret)
	sess.SidebarOpen = open
	s.storeSession(w, r, sess)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// returnPath accepts only local documentation paths, falling back to the
// index of version.
func returnPath(ret string, version navigation.VersionID) string {
	if strings.HasPrefix(ret, "/versions/") && !strings.Contains(ret, "//") {
		return ret
	}
	if version == "" {
		version = navigation.Latest
	}
	return navigation.IndexPath(version)
}

// currentSession returns the caller's session, or a new unsaved one. Sessions
// whose active version is no longer served are deleted.
func (s *Server) currentSession(r *http.Request) *session.Session {
	if s.sessions == nil {
		return &session.Session{}
	}
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return &session.Session{}
	}
	sess, err := s.sessions.Get(r.Context(), c.Value)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			s.logger.Warn("loading session", zap.Error(err))
		}
		return &session.Session{}
	}
	// A version dropped from the config leaves sessions pointing nowhere.
	if sess.ActiveVersion != "" && !s.resolver.IsKnown(sess.ActiveVersion) {
		if err := s.sessions.Delete(r.Context(), sess.ID); err != nil {
			s.logger.Warn("deleting stale session", zap.String("session", sess.ID), zap.Error(err))
		}
		return &session.Session{}
	}
	return sess
}

// storeSession saves sess and, for new sessions, sets the cookie. It must be
// called before anything is written to w.
func (s *Server) storeSession(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if s.sessions == nil {
		return
	}
	isNew := sess.ID == ""
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		s.logger.Warn("saving session", zap.Error(err))
		return
	}
	if isNew {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

type versionsResponse struct {
	Versions []navigation.VersionID `json:"versions"`
	Default  navigation.VersionID   `json:"default"`
	Latest   navigation.VersionID   `json:"latest"`
}

func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	known := s.resolver.Known()
	resp := versionsResponse{Versions: known, Latest: s.resolver.LatestConcrete()}
	if len(known) > 0 {
		resp.Default = known[0]
	}
	writeJSON(w, http.StatusOK, resp)
}

type navigationResponse struct {
	Version  navigation.VersionID `json:"version"`
	Source   navigation.VersionID `json:"source"`
	Sections navigation.Tree      `json:"sections"`
}

func (s *Server) handleNavigation(w http.ResponseWriter, r *http.Request) {
	v := navigation.VersionID(chi.URLParam(r, "version"))
	tree := s.resolver.LoadNavigationTree(v)
	if tree == nil {
		tree = navigation.Tree{}
	}
	writeJSON(w, http.StatusOK, navigationResponse{
		Version:  v,
		Source:   s.resolver.ConcreteFor(v),
		Sections: tree,
	})
}

type resolveResponse struct {
	Path    string               `json:"path"`
	Version navigation.VersionID `json:"version"`
	Source  navigation.VersionID `json:"source"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Query().Get("path")
	if p == "" {
		http.Error(w, "path is required", http.StatusBadRequest)
		return
	}
	v := s.resolver.Resolve(p)
	writeJSON(w, http.StatusOK, resolveResponse{Path: p, Version: v, Source: s.resolver.ConcreteFor(v)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
