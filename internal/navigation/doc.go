// Package navigation resolves documentation versions and their tables of
// contents.
//
// Every page URL carries its version as the third slash-delimited segment
// ("/versions/v21.0.0/guides/assets.html"). ResolveVersion reads that segment,
// falling back to the first known version, and a Resolver maps the result to
// the static Tree loaded for it. The Latest alias borrows the tree of the
// configured newest release and rewrites every URL so the alias stays in the
// address bar.
package navigation
