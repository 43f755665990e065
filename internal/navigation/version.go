package navigation

import (
	"slices"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// VersionID identifies a documentation release, e.g. "v21.0.0", or one of the
// pseudo-versions Latest and Unversioned.
type VersionID string

const (
	// Latest mirrors the newest concrete release under version-agnostic URLs.
	Latest VersionID = "latest"
	// Unversioned is the in-progress docs tree, offered in development mode only.
	Unversioned VersionID = "unversioned"
)

func (v VersionID) String() string { return string(v) }

// Concrete reports whether v names an actual release.
func (v VersionID) Concrete() bool {
	return v != "" && v != Latest && v != Unversioned
}

// KnownVersions builds the ordered list of selectable versions: Latest first,
// then the concrete releases newest first, then Unversioned when devMode is set.
// Tokens that are not valid semantic versions keep their relative order after
// the parseable ones.
func KnownVersions(concrete []VersionID, devMode bool) []VersionID {
	releases := make([]VersionID, 0, len(concrete))
	for _, v := range concrete {
		if v.Concrete() && !slices.Contains(releases, v) {
			releases = append(releases, v)
		}
	}
	sortNewestFirst(releases)

	known := make([]VersionID, 0, len(releases)+2)
	known = append(known, Latest)
	known = append(known, releases...)
	if devMode {
		known = append(known, Unversioned)
	}
	return known
}

// Newest returns the highest concrete version in versions.
func Newest(versions []VersionID) (VersionID, bool) {
	var releases []VersionID
	for _, v := range versions {
		if v.Concrete() {
			releases = append(releases, v)
		}
	}
	if len(releases) == 0 {
		return "", false
	}
	sortNewestFirst(releases)
	return releases[0], true
}

func sortNewestFirst(versions []VersionID) {
	sort.SliceStable(versions, func(i, j int) bool {
		a, errA := semver.NewVersion(string(versions[i]))
		b, errB := semver.NewVersion(string(versions[j]))
		switch {
		case errA != nil && errB != nil:
			return false
		case errA != nil:
			return false
		case errB != nil:
			return true
		}
		return a.GreaterThan(b)
	})
}

// ResolveVersion picks the version named by the third slash-delimited segment
// of pathname ("/docs/v19.0.0/overview" -> "v19.0.0"). A missing or unknown
// segment resolves to known[0].
func ResolveVersion(pathname string, known []VersionID) VersionID {
	fallback := Latest
	if len(known) > 0 {
		fallback = known[0]
	}

	segments := strings.Split(pathname, "/")
	if len(segments) < 3 {
		return fallback
	}
	candidate := VersionID(segments[2])
	if candidate == "" || !slices.Contains(known, candidate) {
		return fallback
	}
	return candidate
}

// IndexPath is the landing page of a version.
func IndexPath(v VersionID) string {
	return "/versions/" + string(v) + "/index.html"
}
