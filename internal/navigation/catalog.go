package navigation

import "sync"

// Catalog is the version -> tree lookup table. It is safe for concurrent use;
// Replace swaps the whole table so readers never see a half-loaded set.
type Catalog struct {
	mu    sync.RWMutex
	trees map[VersionID]Tree
}

// NewCatalog creates a catalog holding trees.
func NewCatalog(trees map[VersionID]Tree) *Catalog {
	c := &Catalog{}
	c.Replace(trees)
	return c
}

// Tree returns a copy of the tree stored for v.
func (c *Catalog) Tree(v VersionID) (Tree, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.trees[v]
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// Has reports whether a tree is stored for v.
func (c *Catalog) Has(v VersionID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.trees[v]
	return ok
}

// Replace installs a new table.
func (c *Catalog) Replace(trees map[VersionID]Tree) {
	table := make(map[VersionID]Tree, len(trees))
	for v, t := range trees {
		table[v] = t.Clone()
	}
	c.mu.Lock()
	c.trees = table
	c.mu.Unlock()
}

// Len is the number of versions in the table.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.trees)
}
