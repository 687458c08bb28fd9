package export

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"browser/flatdom"
)

func buildDocument(t *testing.T) (*flatdom.Arena, flatdom.NodeHandle, flatdom.NodeHandle) {
	t.Helper()

	s := flatdom.NewFlatSink()
	s.AppendDoctypeToDocument("html", "", "")
	html := s.CreateElement(flatdom.QualifiedName{Local: "html"},
		[]flatdom.Attribute{{Name: flatdom.QualifiedName{Local: "lang"}, Value: "en"}},
		flatdom.ElementFlags{})
	s.Append(s.Document(), flatdom.AppendNode(html))
	s.Append(html, flatdom.AppendText("Hi"))
	return s.Finish(), html, flatdom.DocumentHandle
}

func TestExportRecords(t *testing.T) {
	arena, html, root := buildDocument(t)

	tree, err := Export(arena)
	require.NoError(t, err)
	assert.Equal(t, root, tree.Root)
	require.Len(t, tree.Nodes, arena.Len())

	doc, ok := tree.Nodes[root].(Record)
	require.True(t, ok)
	assert.Equal(t, Document, doc.Type)
	assert.Nil(t, doc.Parent)

	doctype, ok := tree.Nodes[1].(Record)
	require.True(t, ok)
	assert.Equal(t, DocType, doctype.Type)
	require.NotNil(t, doctype.Parent)
	assert.Equal(t, root, *doctype.Parent)

	el, ok := tree.Nodes[html].(ElementRecord)
	require.True(t, ok)
	assert.Equal(t, Element, el.Type)
	assert.Equal(t, "html", el.Name)
	assert.Equal(t, []Attr{{Name: "lang", Value: "en"}}, el.Attrs)
	require.Len(t, el.Children, 1)

	text, ok := tree.Nodes[el.Children[0]].(TextRecord)
	require.True(t, ok)
	assert.Equal(t, Text, text.Type)
	assert.Equal(t, "Hi", text.Contents)
}

func TestExportComment(t *testing.T) {
	s := flatdom.NewFlatSink()
	comment := s.CreateComment("note to self")
	s.Append(s.Document(), flatdom.AppendNode(comment))

	tree, err := Export(s.Finish())
	require.NoError(t, err)

	rec, ok := tree.Nodes[comment].(CommentRecord)
	require.True(t, ok)
	assert.Equal(t, Comment, rec.Type)
	assert.Equal(t, "note to self", rec.Contents)
}

func TestExportRemovedNodeKeepsStaleParent(t *testing.T) {
	s := flatdom.NewFlatSink()
	div := s.CreateElement(flatdom.QualifiedName{Local: "div"}, nil, flatdom.ElementFlags{})
	s.Append(s.Document(), flatdom.AppendNode(div))
	s.RemoveFromParent(div)

	tree, err := Export(s.Finish())
	require.NoError(t, err)

	// The arena never forgets a node, and removal leaves the old parent in
	// place, so the record still points at the document.
	el, ok := tree.Nodes[div].(ElementRecord)
	require.True(t, ok)
	require.NotNil(t, el.Parent)
	assert.Equal(t, flatdom.DocumentHandle, *el.Parent)

	doc, ok := tree.Nodes[flatdom.DocumentHandle].(Record)
	require.True(t, ok)
	assert.Equal(t, Document, doc.Type)
}

func TestExportProcessingInstructionFails(t *testing.T) {
	s := flatdom.NewFlatSink()
	pi := s.CreateProcessingInstruction("xml-stylesheet", `href="a.css"`)
	s.Append(s.Document(), flatdom.AppendNode(pi))

	_, err := Export(s.Finish())
	require.Error(t, err)
	assert.Equal(t, ErrUnexportable, errors.Cause(err))
}

func TestMarshalShape(t *testing.T) {
	arena, html, _ := buildDocument(t)

	out, err := Marshal(arena)
	require.NoError(t, err)

	var decoded struct {
		Nodes map[string]map[string]interface{} `json:"nodes"`
		Root  int                               `json:"root"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, 0, decoded.Root)
	require.Len(t, decoded.Nodes, arena.Len())

	el := decoded.Nodes["2"]
	require.NotNil(t, el)
	assert.Equal(t, "element", el["type"])
	assert.Equal(t, "html", el["name"])
	assert.Equal(t, float64(html), el["id"])
	assert.Equal(t, float64(0), el["parent"])

	doc := decoded.Nodes["0"]
	require.NotNil(t, doc)
	assert.Equal(t, "document", doc["type"])
	assert.Nil(t, doc["parent"])

	text := decoded.Nodes["3"]
	require.NotNil(t, text)
	assert.Equal(t, "Hi", text["contents"])
}
