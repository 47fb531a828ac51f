// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package xmltree decodes an XML document into a generic element tree and
// provides depth-first searches over it. E-utilities responses place the
// elements we need (Id, PMID, ArticleTitle, Affiliation) at varying depths,
// so lookups search all descendants rather than fixed paths.
package xmltree

import (
	"encoding/xml"
	"fmt"
)

// Node is one XML element: its name, attributes, character data, and child
// elements in document order.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Chardata string     `xml:",chardata"`
	Nodes    []Node     `xml:",any"`
}

// Parse decodes data into an element tree rooted at the document element.
func Parse(data []byte) (*Node, error) {
	var root Node
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding XML: %w", err)
	}
	return &root, nil
}

// Name returns the element's local name.
func (n *Node) Name() string {
	return n.XMLName.Local
}

// Text returns the element's character data.
func (n *Node) Text() string {
	return n.Chardata
}

// Children returns the element's direct child elements in document order.
func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.Nodes))
	for i := range n.Nodes {
		children[i] = &n.Nodes[i]
	}
	return children
}

// FindFirst returns the first descendant element with the given local name,
// searching depth-first in document order. It returns nil when no descendant
// matches. The receiver itself is never a match.
func (n *Node) FindFirst(name string) *Node {
	for i := range n.Nodes {
		child := &n.Nodes[i]
		if child.XMLName.Local == name {
			return child
		}
		if found := child.FindFirst(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant element with the given local name, in
// document order.
func (n *Node) FindAll(name string) []*Node {
	var found []*Node
	for i := range n.Nodes {
		child := &n.Nodes[i]
		if child.XMLName.Local == name {
			found = append(found, child)
		}
		found = append(found, child.FindAll(name)...)
	}
	return found
}

// ChildText returns the character data of the first direct child with the
// given local name, or "" when no such child exists.
func (n *Node) ChildText(name string) string {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			return n.Nodes[i].Chardata
		}
	}
	return ""
}
