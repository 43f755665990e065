package navigation

import "slices"

// Options configures a Resolver.
type Options struct {
	// Versions are the concrete releases, in any order.
	Versions []VersionID
	// Latest is the concrete release the Latest alias mirrors.
	Latest VersionID
	// DevMode offers the Unversioned tree.
	DevMode bool
}

// Resolver maps version tokens to navigation trees.
type Resolver struct {
	catalog  *Catalog
	known    []VersionID
	latest   VersionID
	fallback VersionID
}

// NewResolver creates a resolver over catalog. When opts.Latest is empty the
// newest concrete version is used.
func NewResolver(catalog *Catalog, opts Options) *Resolver {
	known := KnownVersions(opts.Versions, opts.DevMode)
	newest, _ := Newest(opts.Versions)
	latest := opts.Latest
	if latest == "" {
		latest = newest
	}
	return &Resolver{
		catalog:  catalog,
		known:    known,
		latest:   latest,
		fallback: newest,
	}
}

// Known returns the selectable versions, Latest first.
func (r *Resolver) Known() []VersionID {
	return slices.Clone(r.known)
}

// IsKnown reports whether v is selectable.
func (r *Resolver) IsKnown(v VersionID) bool {
	return slices.Contains(r.known, v)
}

// LatestConcrete is the release the Latest alias mirrors.
func (r *Resolver) LatestConcrete() VersionID { return r.latest }

// Catalog exposes the underlying lookup table.
func (r *Resolver) Catalog() *Catalog { return r.catalog }

// Resolve extracts the version from a request path, see ResolveVersion.
func (r *Resolver) Resolve(pathname string) VersionID {
	return ResolveVersion(pathname, r.known)
}

// ConcreteFor returns the data version backing v: the mirrored release for
// Latest, v itself when the catalog holds it, otherwise the newest release.
func (r *Resolver) ConcreteFor(v VersionID) VersionID {
	if v == Latest {
		return r.latest
	}
	if r.catalog.Has(v) {
		return v
	}
	return r.fallback
}

// LoadNavigationTree returns the tree for v. For Latest the mirrored release's
// tree is returned with every URL rewritten to the alias; any other version
// gets its data unaltered. Unrecognised tokens fall back to the newest release.
func (r *Resolver) LoadNavigationTree(v VersionID) Tree {
	tree, ok := r.catalog.Tree(r.ConcreteFor(v))
	if !ok {
		tree, _ = r.catalog.Tree(r.fallback)
	}
	if v == Latest {
		return RewriteURLsForLatest(tree)
	}
	return tree
}
