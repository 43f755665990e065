package shell

// layoutTemplate is the html/template wrapping every documentation page.
const layoutTemplate = `<!DOCTYPE html>
<html lang="en" style="overflow: {{.Overflow}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/assets/style.css">
</head>
<body style="overflow: {{.Overflow}}" data-version="{{.ActiveVersion}}"{{if .LiveReload}} data-livereload="/livereload"{{end}}>
  <div class="overlay{{if .SidebarOpen}} open{{end}}" id="overlay">
    {{template "sidebar" (sidebar "mobile-sidebar" true .)}}
  </div>

  <header class="site-header">
    <a class="brand" href="{{.HomeHref}}">{{.Product}}</a>
    {{template "versions" .}}
  </header>

  <div class="main{{if .SidebarOpen}} hidden{{end}}" id="main">
    {{template "sidebar" (sidebar "sidebar" false .)}}
    <article class="content" id="content">
      {{.Content}}
    </article>
  </div>

  <nav class="mobile-nav">
    <a href="{{.HomeHref}}" class="mobile-home">{{if .Logo}}<img src="{{.Logo}}" alt="{{.Product}}" class="logo">{{else}}{{.Product}}{{end}}</a>
    <form method="post" action="/shell/menu" class="menu-form">
      <input type="hidden" name="open" value="true">
      <input type="hidden" name="return" value="{{.Path}}">
      <button type="submit" class="button" id="menu-open">Menu</button>
    </form>
  </nav>
  <script src="/assets/script.js"></script>
</body>
</html>
{{define "versions"}}<form method="post" action="/shell/version" class="version-form">
  <select name="version" class="version-select" data-version-select aria-label="Documentation version">
    {{range .Versions}}<option value="{{.}}"{{if eq . $.ActiveVersion}} selected{{end}}>{{.}}</option>
    {{end}}
  </select>
  {{if not .Static}}<noscript><button type="submit" class="button">Go</button></noscript>{{end}}
</form>{{end}}
{{define "sidebar"}}<aside class="sidebar" id="{{.ID}}">
  {{if .Mobile}}<div class="sidebar-top">
    {{template "versions" .L}}
    <form method="post" action="/shell/menu" class="menu-form">
      <input type="hidden" name="open" value="false">
      <input type="hidden" name="return" value="{{.L.Path}}">
      <button type="submit" class="button" id="menu-close">Close</button>
    </form>
  </div>{{end}}
  {{range .L.Routes}}<section class="toc-section">
    <h4><a href="{{.Index}}"{{if $.L.IsActive .Index}} class="active"{{end}}>{{.Title}}</a></h4>
    <ul>
      {{range .Links}}<li><a href="{{.URL}}"{{if $.L.IsActive .URL}} class="active"{{end}}>{{.Title}}</a></li>
      {{end}}
    </ul>
  </section>
  {{end}}
</aside>{{end}}`

// cssContent is the stylesheet shared by every page.
const cssContent = `:root {
  --bg: #ffffff;
  --text: #212529;
  --text-muted: #868e96;
  --border: #eeeeee;
  --accent: #4630eb;
  --header-height: 58px;
  --sidebar-width: 256px;
  --content-max-width: 1440px;
}

*, *::before, *::after { box-sizing: border-box; }

body {
  margin: 0;
  font-family: "Source Sans Pro", -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
}

code, pre { font-family: "Source Code Pro", monospace; }

a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }
a.active { font-weight: 700; }

.button {
  border: 1px solid var(--border);
  background: var(--bg);
  border-radius: 4px;
  padding: 6px 14px;
  cursor: pointer;
  font: inherit;
}

/* Overlay: 200px of white padding above the viewport so momentum scrolling
   never reveals the page underneath. */
.overlay {
  display: none;
  position: absolute;
  width: 100%;
  height: calc(100% + 200px);
  top: -200px;
  padding-top: 200px;
  background: white;
  z-index: 10000;
  overflow-y: scroll;
  -webkit-overflow-scrolling: touch;
}
.overlay.open { display: block; }

.site-header {
  display: none;
  align-items: center;
  justify-content: space-between;
  height: var(--header-height);
  padding: 0 24px;
  border-bottom: 1px solid var(--border);
  position: fixed;
  top: 0; left: 0; right: 0;
  background: var(--bg);
  z-index: 1000;
}
.brand { font-weight: 700; font-size: 1.2rem; color: var(--text); }

.main {
  display: block;
  height: 100%;
  overflow: auto;
  margin: 0 auto;
  max-width: var(--content-max-width);
  padding: 18px;
  padding-top: 48px;
}
.main.hidden { display: none; }

.sidebar { padding: 8px 16px; }
.main .sidebar { display: none; }
.sidebar-top { display: flex; justify-content: space-between; align-items: center; margin-bottom: 16px; }
.toc-section h4 { margin: 16px 0 4px; }
.toc-section ul { list-style: none; margin: 0; padding-left: 8px; }
.toc-section li { margin: 2px 0; font-size: 0.95rem; }

.content { padding-left: 0; }
.content pre { background: #f6f8fa; padding: 12px; overflow-x: auto; border-radius: 4px; }

.mobile-nav {
  display: flex;
  justify-content: space-between;
  align-items: center;
  background: white;
  position: fixed;
  padding: 20px;
  top: 0; left: 0; right: 0;
  z-index: 1001;
  height: 47px;
  border-bottom: 1px solid #ccc;
}
.mobile-nav .logo { max-height: 24px; width: 100px; }
.menu-form, .version-form { display: inline; margin: 0; }

@media (min-width: 750px) {
  .site-header { display: flex; }
  .mobile-nav { display: none; }
  .main { padding: 24px; padding-top: 60px; padding-right: 60px; }
  .main .sidebar {
    display: block;
    float: left;
    position: fixed;
    width: var(--sidebar-width);
    height: calc(100vh - var(--header-height));
    overflow: scroll;
    border-right: 1px solid var(--border);
  }
  .content { display: block; padding-left: 280px; }
}
`

// jsContent progressively enhances the no-JavaScript forms: the overlay is
// toggled in place and the version selector navigates directly.
const jsContent = `(function () {
  var HEADER_OFFSET = 70;

  function offsetAnchor() {
    if (location.hash.length !== 0) {
      window.scrollTo(window.scrollX, window.scrollY - HEADER_OFFSET);
    }
  }

  window.addEventListener('hashchange', offsetAnchor);
  window.addEventListener('pagehide', function teardown() {
    window.removeEventListener('hashchange', offsetAnchor);
    window.removeEventListener('pagehide', teardown);
  });

  function setSidebarOpen(open) {
    var overflow = open ? 'hidden' : 'visible';
    document.getElementById('overlay').classList.toggle('open', open);
    document.getElementById('main').classList.toggle('hidden', open);
    document.documentElement.style.overflow = overflow;
    document.body.style.overflow = overflow;
  }

  document.querySelectorAll('form.menu-form').forEach(function (form) {
    form.addEventListener('submit', function (e) {
      e.preventDefault();
      setSidebarOpen(form.elements.open.value === 'true');
    });
  });

  document.querySelectorAll('[data-version-select]').forEach(function (select) {
    select.addEventListener('change', function () {
      window.location.href = '/versions/' + select.value + '/index.html';
    });
  });

  var reloadPath = document.body.getAttribute('data-livereload');
  if (reloadPath) {
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var socket = new WebSocket(scheme + location.host + reloadPath);
    socket.onmessage = function (e) {
      if (e.data === 'reload') {
        location.reload();
      }
    };
  }
})();
`
