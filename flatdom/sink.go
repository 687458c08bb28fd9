package flatdom

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// QuirksMode is the document compatibility mode the tree-construction
// algorithm derives from the doctype.
// https://dom.spec.whatwg.org/#concept-document-quirks
type QuirksMode uint

const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)

func (q QuirksMode) String() string {
	switch q {
	case LimitedQuirks:
		return "limited-quirks"
	case Quirks:
		return "quirks"
	default:
		return "no-quirks"
	}
}

// ElementFlags carries the element-creation hints the tree-construction
// algorithm derives from the tag token.
type ElementFlags struct {
	Template                            bool
	MathMLAnnotationXMLIntegrationPoint bool
}

// NodeOrText is the child argument of Append and AppendBeforeSibling: either
// an existing handle, or raw character data the sink turns into a fresh text
// node. Text is never merged with an adjacent text sibling.
type NodeOrText struct {
	handle NodeHandle
	text   string
	isNode bool
}

// AppendNode wraps an existing node handle for insertion.
func AppendNode(h NodeHandle) NodeOrText {
	return NodeOrText{handle: h, isNode: true}
}

// AppendText wraps raw character data for insertion.
func AppendText(text string) NodeOrText {
	return NodeOrText{text: text}
}

// FlatSink materializes the mutation commands of an HTML tree-construction
// algorithm into a flat arena. It is the arena's only writer: the caller
// drives it synchronously, one command at a time, then takes the arena back
// with Finish.
type FlatSink struct {
	arena *Arena
	root  NodeHandle
}

func NewFlatSink() *FlatSink {
	arena, root := NewArena()
	return &FlatSink{arena: arena, root: root}
}

// tree is the single Building-state gate: every operation resolves the arena
// through it, so anything called after Finish panics with ErrFinished.
func (s *FlatSink) tree() *Arena {
	if s.arena == nil {
		panic(ErrFinished)
	}
	return s.arena
}

// resolve turns a NodeOrText into a handle, allocating a fresh text node for
// raw character data.
func (s *FlatSink) resolve(child NodeOrText) NodeHandle {
	if child.isNode {
		return child.handle
	}
	return s.tree().Allocate(NewTextNode(child.text))
}

// Document returns the handle of the root document node.
func (s *FlatSink) Document() NodeHandle {
	s.tree()
	return s.root
}

// SameNode reports whether two handles name the same node.
func (s *FlatSink) SameNode(a, b NodeHandle) bool {
	return a == b
}

// ElementName returns the qualified name of an element node. Asking for the
// name of any other kind means the algorithm and the sink disagree about
// what the handle holds, so it panics.
func (s *FlatSink) ElementName(target NodeHandle) QualifiedName {
	n := s.tree().Node(target)
	if n.NodeKind != ElementNode {
		panic(errors.Wrapf(ErrNotAnElement, "element name of %s node %d", n.NodeKind, target))
	}
	return n.Element.Name
}

// CreateElement allocates a new element. A template element gets a second
// allocation, a synthetic document node to hold its fragment; its handle is
// recorded in the element's TemplateContents and always precedes the
// element's own handle.
func (s *FlatSink) CreateElement(name QualifiedName, attrs []Attribute, flags ElementFlags) NodeHandle {
	arena := s.tree()

	contents := InvalidHandle
	if flags.Template {
		contents = arena.Allocate(NewDocumentNode())
	}

	n := NewElementNode(name, attrs)
	n.Element.TemplateContents = contents
	n.Element.MathMLAnnotationXMLIntegrationPoint = flags.MathMLAnnotationXMLIntegrationPoint
	return arena.Allocate(n)
}

// CreateComment allocates a new comment node.
func (s *FlatSink) CreateComment(text string) NodeHandle {
	return s.tree().Allocate(NewCommentNode(text))
}

// CreateProcessingInstruction allocates a new processing-instruction node.
func (s *FlatSink) CreateProcessingInstruction(target, data string) NodeHandle {
	return s.tree().Allocate(NewProcessingInstructionNode(target, data))
}

// Append pushes child onto the end of parent's children and points the child
// back at parent.
func (s *FlatSink) Append(parent NodeHandle, child NodeOrText) {
	arena := s.tree()
	h := s.resolve(child)

	p := arena.Node(parent)
	p.Children = append(p.Children, h)
	arena.Node(h).Parent = parent
}

// AppendBeforeSibling inserts child immediately before sibling among the
// sibling's parent's children, leaving every other position untouched. The
// sibling must be attached; the algorithm never targets the root here.
func (s *FlatSink) AppendBeforeSibling(sibling NodeHandle, child NodeOrText) {
	arena := s.tree()
	h := s.resolve(child)

	sib := arena.Node(sibling)
	if sib.Parent == InvalidHandle {
		panic(errors.Wrapf(ErrDetached, "append before detached sibling %d", sibling))
	}

	p := arena.Node(sib.Parent)
	i := childIndex(p, sibling)
	p.Children = append(p.Children, InvalidHandle)
	copy(p.Children[i+1:], p.Children[i:])
	p.Children[i] = h
	arena.Node(h).Parent = sib.Parent
}

// AppendDoctypeToDocument allocates a doctype node and appends it to the
// root. A doctype is always document-level, never nested.
func (s *FlatSink) AppendDoctypeToDocument(name, publicID, systemID string) {
	arena := s.tree()
	doctype := arena.Allocate(NewDocTypeNode(name, publicID, systemID))

	root := arena.Node(s.root)
	root.Children = append(root.Children, doctype)
	arena.Node(doctype).Parent = s.root
}

// AddAttrsIfMissing merges attrs into the target element, first write wins:
// an incoming attribute whose name is already present is dropped, the rest
// are appended in the order given. Existing attribute order and values are
// never touched.
func (s *FlatSink) AddAttrsIfMissing(target NodeHandle, attrs []Attribute) {
	n := s.tree().Node(target)
	if n.NodeKind != ElementNode {
		panic(errors.Wrapf(ErrNotAnElement, "merge attributes into %s node %d", n.NodeKind, target))
	}

	for _, attr := range attrs {
		if !n.Element.HasAttribute(attr.Name) {
			n.Element.Attrs = append(n.Element.Attrs, attr)
		}
	}
}

// RemoveFromParent drops target from its parent's child list. The target's
// own Parent field is intentionally left pointing at the old parent, so
// HasParentNode keeps reporting true for a removed node. The algorithm only
// removes nodes it is about to reinsert, and reinsertion overwrites Parent,
// so the stale value is never observed upstream.
func (s *FlatSink) RemoveFromParent(target NodeHandle) {
	arena := s.tree()

	n := arena.Node(target)
	if n.Parent == InvalidHandle {
		panic(errors.Wrapf(ErrDetached, "remove detached node %d", target))
	}

	p := arena.Node(n.Parent)
	i := childIndex(p, target)
	p.Children = append(p.Children[:i], p.Children[i+1:]...)
}

// ReparentChildren moves all of source's children, in order, onto the end of
// destination's children and repoints each moved child at destination.
// Source is left childless.
func (s *FlatSink) ReparentChildren(source, destination NodeHandle) {
	arena := s.tree()

	src := arena.Node(source)
	for _, child := range src.Children {
		arena.Node(child).Parent = destination
	}

	dst := arena.Node(destination)
	dst.Children = append(dst.Children, src.Children...)
	src.Children = src.Children[:0]
}

// HasParentNode reports whether target's parent reference is set.
func (s *FlatSink) HasParentNode(target NodeHandle) bool {
	return s.tree().Node(target).Parent != InvalidHandle
}

// TemplateContents is not supported by this sink: the algorithm only needs
// it when it parses into a template's fragment, which this sink never asks
// for.
func (s *FlatSink) TemplateContents(target NodeHandle) NodeHandle {
	panic(errors.Wrapf(ErrUnsupported, "template contents of node %d", target))
}

// MarkScriptAlreadyStarted is not supported by this sink; it never hands
// documents to a script runtime.
func (s *FlatSink) MarkScriptAlreadyStarted(target NodeHandle) {
	panic(errors.Wrapf(ErrUnsupported, "mark script already started on node %d", target))
}

// SetQuirksMode accepts and discards the compatibility mode; the sink does
// not retain it.
func (s *FlatSink) SetQuirksMode(mode QuirksMode) {
	s.tree()
	logrus.WithField("method", "SetQuirksMode").Debugf("[SINK]: quirks mode %s", mode)
}

// ParseError accepts and discards a parse diagnostic; the sink stores what
// it is told to store regardless of how mangled the markup was.
func (s *FlatSink) ParseError(msg string) {
	s.tree()
	logrus.WithField("method", "ParseError").Debugf("[SINK]: %s", msg)
}

// Finish ends the construction pass and hands the arena to the caller. The
// sink relinquishes it: any operation after Finish panics with ErrFinished.
func (s *FlatSink) Finish() *Arena {
	arena := s.tree()
	s.arena = nil
	return arena
}

// childIndex finds target among parent's children. Handles are unique, so
// the first match is the only one; not finding it means the parent/child
// links are corrupt, which the sink's own operations never produce.
func childIndex(parent *Node, target NodeHandle) int {
	for i, child := range parent.Children {
		if child == target {
			return i
		}
	}
	panic(errors.Wrapf(ErrDetached, "node %d not among children of %d", target, parent.Handle))
}
