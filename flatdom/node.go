package flatdom

type NodeKind uint16

const (
	DocumentNode NodeKind = iota + 1
	DocumentTypeNode
	TextNode
	CommentNode
	ElementNode
	ProcessingInstructionNode
)

func (k NodeKind) String() string {
	switch k {
	case DocumentNode:
		return "document"
	case DocumentTypeNode:
		return "doctype"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	case ElementNode:
		return "element"
	case ProcessingInstructionNode:
		return "processing-instruction"
	}
	return "unknown"
}

type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
)

// QualifiedName is a namespaced name as used for element tags and attribute
// keys. https://dom.spec.whatwg.org/#concept-attribute-qualified-name
type QualifiedName struct {
	Namespace Namespace
	Prefix    string
	Local     string
}

func (q QualifiedName) String() string {
	if q.Prefix != "" {
		return q.Prefix + ":" + q.Local
	}
	return q.Local
}

type Attribute struct {
	Name  QualifiedName
	Value string
}

// Node is a single entry of the arena. Parent and Children relate nodes by
// handle only; the arena owns every node for its whole lifetime. Exactly one
// of the kind payloads is non-nil, matching NodeKind.
type Node struct {
	Handle   NodeHandle
	Parent   NodeHandle
	Children []NodeHandle
	NodeKind NodeKind

	// Node kinds
	*Element
	*Text
	*Comment
	*DocumentType
	*ProcessingInstruction
}

// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	Name  QualifiedName
	Attrs []Attribute

	// TemplateContents points at the synthetic document node holding a
	// template's fragment; InvalidHandle for every other element.
	TemplateContents NodeHandle

	// https://html.spec.whatwg.org/multipage/parsing.html#mathml-text-integration-point
	MathMLAnnotationXMLIntegrationPoint bool
}

// HasAttribute reports whether an attribute with the given qualified name is
// already present.
func (e *Element) HasAttribute(name QualifiedName) bool {
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return true
		}
	}
	return false
}

type Text struct {
	Contents string
}

type Comment struct {
	Contents string
}

// https://dom.spec.whatwg.org/#interface-documenttype
type DocumentType struct {
	Name     string
	PublicID string
	SystemID string
}

type ProcessingInstruction struct {
	Target   string
	Contents string
}

func newNode(kind NodeKind) *Node {
	return &Node{
		Parent:   InvalidHandle,
		Children: make([]NodeHandle, 0, 10),
		NodeKind: kind,
	}
}

// NewDocumentNode returns a document node. Beyond the root, documents only
// show up as the synthetic fragment holders of template elements.
func NewDocumentNode() *Node {
	return newNode(DocumentNode)
}

func NewDocTypeNode(name, publicID, systemID string) *Node {
	n := newNode(DocumentTypeNode)
	n.DocumentType = &DocumentType{
		Name:     name,
		PublicID: publicID,
		SystemID: systemID,
	}
	return n
}

func NewTextNode(contents string) *Node {
	n := newNode(TextNode)
	n.Text = &Text{Contents: contents}
	return n
}

func NewCommentNode(contents string) *Node {
	n := newNode(CommentNode)
	n.Comment = &Comment{Contents: contents}
	return n
}

func NewElementNode(name QualifiedName, attrs []Attribute) *Node {
	n := newNode(ElementNode)
	n.Element = &Element{
		Name:             name,
		Attrs:            attrs,
		TemplateContents: InvalidHandle,
	}
	return n
}

func NewProcessingInstructionNode(target, contents string) *Node {
	n := newNode(ProcessingInstructionNode)
	n.ProcessingInstruction = &ProcessingInstruction{
		Target:   target,
		Contents: contents,
	}
	return n
}
