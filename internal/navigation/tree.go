package navigation

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Link is one named entry under a section.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Links is an ordered title -> URL mapping. In YAML it is written as a plain
// mapping; document order is preserved.
type Links []Link

// Section is one table-of-contents entry.
type Section struct {
	Index string `yaml:"index" json:"index"`
	Title string `yaml:"title" json:"title"`
	Links Links  `yaml:"links" json:"links"`
}

// Tree is the navigation of one version.
type Tree []Section

// UnmarshalYAML decodes a mapping node, keeping key order.
func (l *Links) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*l = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: links must be a mapping of title to URL", value.Line)
	}

	links := make(Links, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var title, url string
		if err := value.Content[i].Decode(&title); err != nil {
			return fmt.Errorf("line %d: link title: %w", value.Content[i].Line, err)
		}
		if err := value.Content[i+1].Decode(&url); err != nil {
			return fmt.Errorf("line %d: link %q: %w", value.Content[i+1].Line, title, err)
		}
		links = append(links, Link{Title: title, URL: url})
	}
	*l = links
	return nil
}

// MarshalYAML writes the links back as an ordered mapping.
func (l Links) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, link := range l {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: link.Title},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: link.URL},
		)
	}
	return node, nil
}

// Clone returns a deep copy of the tree.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for i, s := range t {
		out[i] = Section{Index: s.Index, Title: s.Title}
		if s.Links != nil {
			out[i].Links = append(make(Links, 0, len(s.Links)), s.Links...)
		}
	}
	return out
}

// URLs lists every URL in the tree, section index first, then its links.
func (t Tree) URLs() []string {
	var urls []string
	for _, s := range t {
		urls = append(urls, s.Index)
		for _, link := range s.Links {
			urls = append(urls, link.URL)
		}
	}
	return urls
}
