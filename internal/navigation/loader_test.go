package navigation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"
)

func TestDataFileName(t *testing.T) {
	tests := []struct {
		in   VersionID
		want string
	}{
		{"v21.0.0", "v21.yaml"},
		{"v15.0.0", "v15.yaml"},
		{Unversioned, "unversioned.yaml"},
		{Latest, ""},
	}
	for _, tt := range tests {
		if got := DataFileName(tt.in); got != tt.want {
			t.Errorf("DataFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLinksPreserveOrder(t *testing.T) {
	src := `
- title: Guides
  index: /versions/v1.0.0/guides/index.html
  links:
    Zeta: /versions/v1.0.0/guides/zeta.html
    Alpha: /versions/v1.0.0/guides/alpha.html
    Mu: /versions/v1.0.0/guides/mu.html
`
	var tree Tree
	if err := yaml.Unmarshal([]byte(src), &tree); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(tree) != 1 || len(tree[0].Links) != 3 {
		t.Fatalf("unexpected tree: %+v", tree)
	}
	order := []string{"Zeta", "Alpha", "Mu"}
	for i, title := range order {
		if tree[0].Links[i].Title != title {
			t.Errorf("link %d = %q, want %q", i, tree[0].Links[i].Title, title)
		}
	}
	if u := tree[0].Links[1].URL; u != "/versions/v1.0.0/guides/alpha.html" {
		t.Errorf("Alpha URL = %q", u)
	}

	out, err := yaml.Marshal(tree)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again Tree
	if err := yaml.Unmarshal(out, &again); err != nil {
		t.Fatalf("unmarshal marshalled tree: %v", err)
	}
	if again[0].Links[0].Title != "Zeta" {
		t.Errorf("order lost after marshalling: %+v", again[0].Links)
	}
}

func TestLinksRejectSequence(t *testing.T) {
	src := `
- title: Broken
  index: /versions/v1.0.0/index.html
  links:
    - /versions/v1.0.0/a.html
`
	var tree Tree
	if err := yaml.Unmarshal([]byte(src), &tree); err == nil {
		t.Error("expected an error for a links sequence")
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	_, err := Loader{Dir: testDataDir}.LoadAll([]VersionID{"v21.0.0", "v15.0.0"})
	if err == nil {
		t.Fatal("expected an error for a missing v15 file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadAllNoData(t *testing.T) {
	_, err := Loader{Dir: t.TempDir()}.LoadAll([]VersionID{Latest})
	if !errors.Is(err, ErrNoNavigationData) {
		t.Errorf("expected ErrNoNavigationData, got %v", err)
	}
}

func TestLoaderFileOverride(t *testing.T) {
	dir := t.TempDir()
	body := "- title: Home\n  index: /versions/v3.0.0/index.html\n  links: {}\n"
	if err := os.WriteFile(filepath.Join(dir, "three.yml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	l := Loader{Dir: dir, Files: map[VersionID]string{"v3.0.0": "three.yml"}}
	tree, err := l.LoadTree("v3.0.0")
	if err != nil {
		t.Fatalf("LoadTree: %v", err)
	}
	if tree[0].Title != "Home" {
		t.Errorf("title = %q, want Home", tree[0].Title)
	}
}

func TestWatcherReloadsCatalog(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "v1.yaml")
	write := func(title string) {
		t.Helper()
		body := "- title: " + title + "\n  index: /versions/v1.0.0/index.html\n  links: {}\n"
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("Before")

	loader := Loader{Dir: dir}
	versions := []VersionID{Latest, "v1.0.0"}
	trees, err := loader.LoadAll(versions)
	if err != nil {
		t.Fatal(err)
	}
	catalog := NewCatalog(trees)

	w, err := NewWatcher(loader, versions, catalog, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.debounce = 10 * time.Millisecond
	reloaded := make(chan struct{}, 1)
	w.OnReload(func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	write("After")

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("catalog was not reloaded")
	}
	tree, _ := catalog.Tree("v1.0.0")
	if tree[0].Title != "After" {
		t.Errorf("title = %q, want After", tree[0].Title)
	}
}

func TestWatcherKeepsTableOnBadFile(t *testing.T) {
	dir := t.TempDir()
	loader := Loader{Dir: dir}
	catalog := NewCatalog(map[VersionID]Tree{"v1.0.0": {{Title: "Kept"}}})

	w, err := NewWatcher(loader, []VersionID{"v1.0.0"}, catalog, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	w.Reload()
	tree, ok := catalog.Tree("v1.0.0")
	if !ok || tree[0].Title != "Kept" {
		t.Errorf("catalog should keep its table when reloading fails, got %+v", tree)
	}
}
