// Package export flattens a finished arena into the keyed node map handed
// across the process boundary: one record per handle, plus the root handle.
package export

import (
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"

	"browser/flatdom"
)

// ErrUnexportable reports a node kind outside the export taxonomy.
// Processing instructions are constructible but deliberately have no export
// record.
var ErrUnexportable = errors.New("export: node kind has no export record")

type NodeType string

const (
	Document NodeType = "document"
	DocType  NodeType = "doctype"
	Text     NodeType = "text"
	Comment  NodeType = "comment"
	Element  NodeType = "element"
)

// Record is the part every exported node carries. Parent is null for a node
// that was never inserted anywhere; a removed node keeps exporting its old
// parent, matching the sink's stale-parent semantics.
type Record struct {
	ID     flatdom.NodeHandle  `json:"id"`
	Parent *flatdom.NodeHandle `json:"parent"`
	Type   NodeType            `json:"type"`
}

type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ElementRecord is the only record kind that carries structure: its children
// in document order and its attributes in definition order.
type ElementRecord struct {
	Record
	Children []flatdom.NodeHandle `json:"children"`
	Name     string               `json:"name"`
	Attrs    []Attr               `json:"attrs"`
}

type TextRecord struct {
	Record
	Contents string `json:"contents"`
}

type CommentRecord struct {
	Record
	Contents string `json:"contents"`
}

// Tree is the full export value: every node the arena ever allocated, keyed
// by handle, and the root handle.
type Tree struct {
	Nodes map[flatdom.NodeHandle]interface{} `json:"nodes"`
	Root  flatdom.NodeHandle                 `json:"root"`
}

func record(n *flatdom.Node, t NodeType) Record {
	r := Record{ID: n.Handle, Type: t}
	if n.Parent != flatdom.InvalidHandle {
		parent := n.Parent
		r.Parent = &parent
	}
	return r
}

func exportNode(n *flatdom.Node) (interface{}, error) {
	switch n.NodeKind {
	case flatdom.DocumentNode:
		return record(n, Document), nil
	case flatdom.DocumentTypeNode:
		return record(n, DocType), nil
	case flatdom.TextNode:
		return TextRecord{Record: record(n, Text), Contents: n.Text.Contents}, nil
	case flatdom.CommentNode:
		return CommentRecord{Record: record(n, Comment), Contents: n.Comment.Contents}, nil
	case flatdom.ElementNode:
		children := make([]flatdom.NodeHandle, len(n.Children))
		copy(children, n.Children)
		attrs := make([]Attr, 0, len(n.Element.Attrs))
		for _, attr := range n.Element.Attrs {
			attrs = append(attrs, Attr{Name: attr.Name.String(), Value: attr.Value})
		}
		return ElementRecord{
			Record:   record(n, Element),
			Children: children,
			Name:     n.Element.Name.String(),
			Attrs:    attrs,
		}, nil
	default:
		return nil, errors.Wrapf(ErrUnexportable, "node %d is a %s", n.Handle, n.NodeKind)
	}
}

// Export maps every node of a finished arena to its record.
func Export(a *flatdom.Arena) (*Tree, error) {
	nodes := make(map[flatdom.NodeHandle]interface{}, a.Len())
	for h := flatdom.NodeHandle(0); int(h) < a.Len(); h++ {
		rec, err := exportNode(a.Node(h))
		if err != nil {
			return nil, err
		}
		nodes[h] = rec
	}

	return &Tree{Nodes: nodes, Root: flatdom.DocumentHandle}, nil
}

// Marshal exports a finished arena and encodes it as JSON.
func Marshal(a *flatdom.Arena) ([]byte, error) {
	tree, err := Export(a)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}
