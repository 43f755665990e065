package navigation

import "strings"

// versionSegment is the slash-split index holding the version in every
// navigation URL ("/versions/v21.0.0/..." -> ["", "versions", "v21.0.0", ...]).
const versionSegment = 2

// ReplaceVersionInURL substitutes the version segment of url with version.
// URLs too short to carry a version segment are returned unchanged.
func ReplaceVersionInURL(url string, version VersionID) string {
	parts := strings.Split(url, "/")
	if len(parts) <= versionSegment {
		return url
	}
	parts[versionSegment] = string(version)
	return strings.Join(parts, "/")
}

// RewriteURLsForLatest returns a copy of tree with every section index and
// link URL pointing at the Latest alias. tree is left untouched.
func RewriteURLsForLatest(tree Tree) Tree {
	if tree == nil {
		return nil
	}
	out := make(Tree, 0, len(tree))
	for _, s := range tree {
		section := Section{
			Index: ReplaceVersionInURL(s.Index, Latest),
			Title: s.Title,
		}
		for _, link := range s.Links {
			section.Links = append(section.Links, Link{
				Title: link.Title,
				URL:   ReplaceVersionInURL(link.URL, Latest),
			})
		}
		out = append(out, section)
	}
	return out
}
