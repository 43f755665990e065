package navigation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testDataDir = "../../testdata/site/data"

var testReleases = []VersionID{"v19.0.0", "v21.0.0", "v16.0.0", "v20.0.0"}

func loadTestResolver(t *testing.T, devMode bool) *Resolver {
	t.Helper()
	loader := Loader{Dir: testDataDir}
	trees, err := loader.LoadAll(KnownVersions(testReleases, devMode))
	if err != nil {
		t.Fatalf("loading test data: %v", err)
	}
	return NewResolver(NewCatalog(trees), Options{
		Versions: testReleases,
		Latest:   "v21.0.0",
		DevMode:  devMode,
	})
}

func TestKnownVersions(t *testing.T) {
	got := KnownVersions(testReleases, false)
	want := []VersionID{Latest, "v21.0.0", "v20.0.0", "v19.0.0", "v16.0.0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("KnownVersions mismatch (-want +got):\n%s", diff)
	}

	dev := KnownVersions(testReleases, true)
	if dev[len(dev)-1] != Unversioned {
		t.Errorf("last dev version = %q, want %q", dev[len(dev)-1], Unversioned)
	}
	if dev[0] != Latest {
		t.Errorf("first version = %q, want %q", dev[0], Latest)
	}
}

func TestKnownVersionsDropsAliasesAndDuplicates(t *testing.T) {
	got := KnownVersions([]VersionID{"v2.0.0", Latest, "v2.0.0", Unversioned, "v10.0.0"}, false)
	want := []VersionID{Latest, "v10.0.0", "v2.0.0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("KnownVersions mismatch (-want +got):\n%s", diff)
	}
}

func TestNewest(t *testing.T) {
	v, ok := Newest(testReleases)
	if !ok || v != "v21.0.0" {
		t.Errorf("Newest = %q, %v; want v21.0.0, true", v, ok)
	}
	if _, ok := Newest([]VersionID{Latest, Unversioned}); ok {
		t.Error("Newest of aliases only should report false")
	}
}

func TestResolveVersion(t *testing.T) {
	known := KnownVersions(testReleases, false)
	tests := []struct {
		path string
		want VersionID
	}{
		{"/docs/v19.0.0/overview", "v19.0.0"},
		{"/versions/v16.0.0/index.html", "v16.0.0"},
		{"/docs/latest/overview", Latest},
		{"/versions/v21.0.0", "v21.0.0"},
		{"/docs/v99.0.0/overview", Latest},
		{"/docs/unversioned/overview", Latest},
		{"/docs//overview", Latest},
		{"/docs", Latest},
		{"/", Latest},
		{"", Latest},
		{"not-a-path", Latest},
	}
	for _, tt := range tests {
		if got := ResolveVersion(tt.path, known); got != tt.want {
			t.Errorf("ResolveVersion(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestResolveVersionEveryKnownToken(t *testing.T) {
	known := KnownVersions(testReleases, true)
	for _, v := range known {
		path := "/versions/" + string(v) + "/guides/assets.html"
		if got := ResolveVersion(path, known); got != v {
			t.Errorf("ResolveVersion(%q) = %q, want %q", path, got, v)
		}
	}
}

func TestResolveVersionDefaultsToFirstKnown(t *testing.T) {
	known := []VersionID{"v3.0.0", "v2.0.0"}
	if got := ResolveVersion("/docs/v1.0.0/x", known); got != "v3.0.0" {
		t.Errorf("got %q, want first known token", got)
	}
	if got := ResolveVersion("/docs/v1.0.0/x", nil); got != Latest {
		t.Errorf("got %q with no known versions, want %q", got, Latest)
	}
}

func TestReplaceVersionInURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"/versions/v21.0.0/guides/assets.html", "/versions/latest/guides/assets.html"},
		{"/versions/v21.0.0/", "/versions/latest/"},
		{"/versions/latest/sdk/camera.html", "/versions/latest/sdk/camera.html"},
		{"/versions", "/versions"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ReplaceVersionInURL(tt.url, Latest); got != tt.want {
			t.Errorf("ReplaceVersionInURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestRewriteURLsForLatest(t *testing.T) {
	tree := Tree{{
		Index: "/versions/v21.0.0/sdk/index.html",
		Title: "SDK",
		Links: Links{
			{Title: "Camera", URL: "/versions/v21.0.0/sdk/camera.html"},
			{Title: "Location", URL: "/versions/v21.0.0/sdk/location.html"},
		},
	}}
	original := tree.Clone()

	got := RewriteURLsForLatest(tree)
	want := Tree{{
		Index: "/versions/latest/sdk/index.html",
		Title: "SDK",
		Links: Links{
			{Title: "Camera", URL: "/versions/latest/sdk/camera.html"},
			{Title: "Location", URL: "/versions/latest/sdk/location.html"},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rewrite mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original, tree); diff != "" {
		t.Errorf("input was mutated (-want +got):\n%s", diff)
	}

	twice := RewriteURLsForLatest(got)
	if diff := cmp.Diff(got, twice); diff != "" {
		t.Errorf("rewrite is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestLoadNavigationTreeConcrete(t *testing.T) {
	r := loadTestResolver(t, false)
	raw, err := Loader{Dir: testDataDir}.LoadTree("v19.0.0")
	if err != nil {
		t.Fatal(err)
	}

	got := r.LoadNavigationTree(r.Resolve("/docs/v19.0.0/overview"))
	if diff := cmp.Diff(raw, got); diff != "" {
		t.Errorf("v19 tree should be unmodified (-want +got):\n%s", diff)
	}
	for _, u := range got.URLs() {
		if !strings.HasPrefix(u, "/versions/v19.0.0/") {
			t.Errorf("unexpected url %q in v19 tree", u)
		}
	}
}

func TestLoadNavigationTreeLatest(t *testing.T) {
	r := loadTestResolver(t, false)
	v := r.Resolve("/docs/latest/overview")
	if v != Latest {
		t.Fatalf("Resolve = %q, want latest", v)
	}

	got := r.LoadNavigationTree(v)
	if len(got) == 0 {
		t.Fatal("latest tree is empty")
	}
	for _, u := range got.URLs() {
		if seg := strings.Split(u, "/")[2]; seg != string(Latest) {
			t.Errorf("url %q has version segment %q, want latest", u, seg)
		}
	}

	raw, _ := Loader{Dir: testDataDir}.LoadTree("v21.0.0")
	if diff := cmp.Diff(RewriteURLsForLatest(raw), got); diff != "" {
		t.Errorf("latest should mirror v21 (-want +got):\n%s", diff)
	}
}

func TestLoadNavigationTreeUnknownFallsBack(t *testing.T) {
	r := loadTestResolver(t, false)
	want := r.LoadNavigationTree("v21.0.0")
	got := r.LoadNavigationTree("v1.0.0")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unknown version should fall back to newest (-want +got):\n%s", diff)
	}
}

func TestLoadNavigationTreeDoesNotShareState(t *testing.T) {
	r := loadTestResolver(t, false)
	first := r.LoadNavigationTree("v20.0.0")
	first[0].Links[0].URL = "/mutated"
	second := r.LoadNavigationTree("v20.0.0")
	if second[0].Links[0].URL == "/mutated" {
		t.Error("caller mutation leaked into the catalog")
	}
}

func TestUnversionedOnlyInDevMode(t *testing.T) {
	if loadTestResolver(t, false).IsKnown(Unversioned) {
		t.Error("unversioned should not be known outside dev mode")
	}
	r := loadTestResolver(t, true)
	if !r.IsKnown(Unversioned) {
		t.Fatal("unversioned should be known in dev mode")
	}
	tree := r.LoadNavigationTree(Unversioned)
	if len(tree) != 2 || tree[0].Index != "/versions/unversioned/introduction/index.html" {
		t.Errorf("unexpected unversioned tree: %+v", tree)
	}
}

func TestConcreteFor(t *testing.T) {
	r := loadTestResolver(t, false)
	tests := []struct {
		in, want VersionID
	}{
		{Latest, "v21.0.0"},
		{"v16.0.0", "v16.0.0"},
		{"v2.0.0", "v21.0.0"},
	}
	for _, tt := range tests {
		if got := r.ConcreteFor(tt.in); got != tt.want {
			t.Errorf("ConcreteFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
