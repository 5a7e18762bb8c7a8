// Package ast declares the CommonMark document tree consumed by the renderer.
//
// A tree is owned top-down by whoever holds its root. Parent and sibling links
// are navigation only; nothing in this module rewires a tree once it is built.
package ast

import "strconv"

// NodeType is the closed vocabulary of CommonMark node types.
type NodeType int

const (
	Document NodeType = iota
	BlockQuote
	List
	Item
	Paragraph
	Heading
	ThematicBreak
	CodeBlock
	HTMLBlock
	Text
	Softbreak
	Hardbreak
	Code
	Emph
	Strong
	Link
	Image
	HTMLInline

	numTypes
)

var typeNames = [...]string{
	Document:      "Document",
	BlockQuote:    "BlockQuote",
	List:          "List",
	Item:          "Item",
	Paragraph:     "Paragraph",
	Heading:       "Heading",
	ThematicBreak: "ThematicBreak",
	CodeBlock:     "CodeBlock",
	HTMLBlock:     "HtmlBlock",
	Text:          "Text",
	Softbreak:     "Softbreak",
	Hardbreak:     "Hardbreak",
	Code:          "Code",
	Emph:          "Emph",
	Strong:        "Strong",
	Link:          "Link",
	Image:         "Image",
	HTMLInline:    "HtmlInline",
}

func (t NodeType) String() string {
	if t.Valid() {
		return typeNames[t]
	}
	return "NodeType(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t belongs to the vocabulary.
func (t NodeType) Valid() bool {
	return t >= 0 && t < numTypes
}

// IsContainer reports whether nodes of type t own child nodes.
func (t NodeType) IsContainer() bool {
	switch t {
	case Document, BlockQuote, List, Item, Paragraph, Heading, Emph, Strong, Link, Image:
		return true
	}
	return false
}

// ParseType returns the node type named name, as printed by String.
func ParseType(name string) (NodeType, bool) {
	for i, s := range typeNames {
		if s == name {
			return NodeType(i), true
		}
	}
	return 0, false
}

// Types returns every node type in declaration order.
func Types() []NodeType {
	ts := make([]NodeType, numTypes)
	for i := range ts {
		ts[i] = NodeType(i)
	}
	return ts
}

type ListType int

const (
	Bullet ListType = iota
	Ordered
)

func (l ListType) String() string {
	if l == Ordered {
		return "Ordered"
	}
	return "Bullet"
}

// Position is a 1-based line and column in the markdown source.
type Position struct {
	Line   int
	Column int
}

// SourcePos is the span of source a block node was parsed from.
type SourcePos struct {
	Start Position
	End   Position
}

// Node is a single CommonMark construct.
//
// Only the fields relevant to Type are meaningful: Literal for leaves,
// Level for headings, Destination and Title for links and images,
// Info for code blocks, and the List fields for lists.
type Node struct {
	Type        NodeType
	Literal     string
	Level       int
	Destination string
	Title       string
	Info        string
	ListType    ListType
	ListStart   int
	ListTight   bool
	SourcePos   *SourcePos

	parent     *Node
	prev       *Node
	next       *Node
	firstChild *Node
	lastChild  *Node
}

// NewNode returns a node of type t with children appended in order.
func NewNode(t NodeType, children ...*Node) *Node {
	n := &Node{Type: t}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// IsContainer reports whether n may own children.
func (n *Node) IsContainer() bool { return n.Type.IsContainer() }

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Prev() *Node       { return n.prev }
func (n *Node) Next() *Node       { return n.next }
func (n *Node) FirstChild() *Node { return n.firstChild }
func (n *Node) LastChild() *Node  { return n.lastChild }

// AppendChild detaches c from any previous parent and makes it the last child of n.
func (n *Node) AppendChild(c *Node) {
	c.unlink()
	c.parent = n
	if n.lastChild != nil {
		n.lastChild.next = c
		c.prev = n.lastChild
		n.lastChild = c
	} else {
		n.firstChild = c
		n.lastChild = c
	}
}

func (n *Node) unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	} else if n.parent != nil {
		n.parent.firstChild = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else if n.parent != nil {
		n.parent.lastChild = n.prev
	}
	n.parent, n.prev, n.next = nil, nil, nil
}

// Walker returns a depth-first cursor over the subtree rooted at n.
func (n *Node) Walker() *Walker {
	return &Walker{root: n, current: n, entering: true}
}
