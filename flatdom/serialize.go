package flatdom

import (
	"sort"
	"strings"
)

// The dump format below is the html5lib tree-construction test format: one
// node per line, "| " plus two spaces per depth, attributes sorted by name
// on their own lines. Attribute order in the arena itself is insertion
// order; sorting here is only for a stable dump.

func serializeNodeKind(node *Node, indent int) string {
	switch node.NodeKind {
	case ElementNode:
		e := "<"
		switch node.Element.Name.Namespace {
		case Svgns:
			e += "svg "
		case Mathmlns:
			e += "math "
		}
		e += node.Element.Name.String() + ">"
		if len(node.Element.Attrs) != 0 {
			names := make([]string, 0, len(node.Element.Attrs))
			byName := make(map[string]string, len(node.Element.Attrs))
			for _, attr := range node.Element.Attrs {
				names = append(names, attr.Name.String())
				byName[attr.Name.String()] = attr.Value
			}
			sort.Strings(names)
			spaces := "| "
			for i := 1; i < indent; i++ {
				spaces += "  "
			}
			for _, name := range names {
				e += "\n" + spaces + name + "=\"" + byName[name] + "\""
			}
		}
		return e
	case TextNode:
		return "\"" + node.Text.Contents + "\""
	case CommentNode:
		return "<!-- " + node.Comment.Contents + " -->"
	case DocumentTypeNode:
		d := "<!DOCTYPE " + node.DocumentType.Name
		if len(node.DocumentType.PublicID) != 0 || len(node.DocumentType.SystemID) != 0 {
			d += " \"" + node.DocumentType.PublicID + "\""
			d += " \"" + node.DocumentType.SystemID + "\""
		}
		return d + ">"
	case DocumentNode:
		return "#document"
	case ProcessingInstructionNode:
		return "<?" + node.ProcessingInstruction.Target + " " + node.ProcessingInstruction.Contents + ">"
	default:
		return "#unknown"
	}
}

func (a *Arena) serialize(h NodeHandle, indent int) string {
	node := a.Node(h)
	ser := serializeNodeKind(node, indent+1) + "\n"
	if node.NodeKind != DocumentNode {
		spaces := "| "
		for i := 1; i < indent; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.Children {
		ser += a.serialize(child, indent+1)
	}

	return ser
}

// String dumps the tree under the root document in the html5lib test format.
func (a *Arena) String() string {
	return strings.TrimRight(a.serialize(DocumentHandle, 0), "\n")
}
