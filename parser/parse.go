// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package parser reads CommonMark source with goldmark and outputs an *ast.Node
// document.
//
// goldmark node kinds map onto the ast vocabulary as follows:
// 	Paragraph, TextBlock            Paragraph
// 	Heading                         Heading
// 	CodeBlock, FencedCodeBlock      CodeBlock
// 	HTMLBlock                       HtmlBlock
// 	List, ListItem                  List, Item
// 	Blockquote                      BlockQuote
// 	ThematicBreak                   ThematicBreak
// 	Text, String                    Text (followed by Softbreak or Hardbreak)
// 	CodeSpan                        Code
// 	Emphasis (level 1, 2)           Emph, Strong
// 	Link, AutoLink                  Link
// 	Image                           Image
// 	RawHTML                         HtmlInline
//
// Nodes of any other kind are unwrapped: their children are attached to the
// nearest converted ancestor.
//
// Block nodes carry a SourcePos. Inline nodes do not.
package parser // import "akhil.cc/cmrender/parser"

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"akhil.cc/cmrender/ast"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// MustParse is like Parse but panics if the source cannot be read.
func MustParse(src io.Reader) *ast.Node {
	doc, err := Parse(src)
	if err != nil {
		panic("Parse error: " + err.Error())
	}
	return doc
}

// Parse reads all of src and returns its document node.
func Parse(src io.Reader) (*ast.Node, error) {
	source, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return ParseBytes(source), nil
}

// ParseBytes parses source, which must not be modified while the returned tree is in use.
func ParseBytes(source []byte) *ast.Node {
	spans := make(map[gast.Node]*consumed)
	pc := parser.NewContext()
	pc.Set(spansKey, spans)
	root := newParser().Parse(text.NewReader(source), parser.WithContext(pc))
	c := &converter{source: source, lines: lineStarts(source), spans: spans}
	doc := ast.NewNode(ast.Document)
	c.children(doc, root)
	doc.SourcePos = c.span(doc)
	return doc
}

type converter struct {
	source []byte
	lines  []int
	spans  map[gast.Node]*consumed
}

func (c *converter) children(dst *ast.Node, src gast.Node) {
	for s := src.FirstChild(); s != nil; s = s.NextSibling() {
		c.convert(dst, s)
	}
}

func (c *converter) convert(parent *ast.Node, src gast.Node) {
	var n *ast.Node
	switch t := src.(type) {
	case *gast.Paragraph, *gast.TextBlock:
		n = &ast.Node{Type: ast.Paragraph}
	case *gast.Heading:
		n = &ast.Node{Type: ast.Heading, Level: t.Level}
	case *gast.ThematicBreak:
		n = &ast.Node{Type: ast.ThematicBreak}
	case *gast.FencedCodeBlock:
		n = &ast.Node{Type: ast.CodeBlock, Literal: c.lineText(t.Lines())}
		if t.Info != nil {
			n.Info = string(t.Info.Segment.Value(c.source))
		}
	case *gast.CodeBlock:
		n = &ast.Node{Type: ast.CodeBlock, Literal: c.lineText(t.Lines())}
	case *gast.HTMLBlock:
		lit := c.lineText(t.Lines())
		if t.HasClosure() {
			lit += string(t.ClosureLine.Value(c.source))
		}
		n = &ast.Node{Type: ast.HTMLBlock, Literal: lit}
	case *gast.List:
		n = &ast.Node{Type: ast.List, ListStart: t.Start, ListTight: t.IsTight}
		if t.IsOrdered() {
			n.ListType = ast.Ordered
		}
	case *gast.ListItem:
		n = &ast.Node{Type: ast.Item}
	case *gast.Blockquote:
		n = &ast.Node{Type: ast.BlockQuote}
	case *gast.Text:
		parent.AppendChild(&ast.Node{Type: ast.Text, Literal: c.inlineText(t)})
		switch {
		case t.HardLineBreak():
			parent.AppendChild(&ast.Node{Type: ast.Hardbreak})
		case t.SoftLineBreak():
			parent.AppendChild(&ast.Node{Type: ast.Softbreak})
		}
		return
	case *gast.String:
		parent.AppendChild(&ast.Node{Type: ast.Text, Literal: string(t.Value)})
		return
	case *gast.CodeSpan:
		var b bytes.Buffer
		for s := t.FirstChild(); s != nil; s = s.NextSibling() {
			switch l := s.(type) {
			case *gast.Text:
				spaceLineEnding(&b, l.Segment.Value(c.source))
			case *gast.String:
				spaceLineEnding(&b, l.Value)
			}
		}
		parent.AppendChild(&ast.Node{Type: ast.Code, Literal: b.String()})
		return
	case *gast.Emphasis:
		n = &ast.Node{Type: ast.Emph}
		if t.Level >= 2 {
			n.Type = ast.Strong
		}
	case *gast.Link:
		n = &ast.Node{Type: ast.Link, Destination: string(t.Destination), Title: string(t.Title)}
	case *gast.Image:
		n = &ast.Node{Type: ast.Image, Destination: string(t.Destination), Title: string(t.Title)}
	case *gast.AutoLink:
		dest := string(t.URL(c.source))
		if t.AutoLinkType == gast.AutoLinkEmail {
			dest = "mailto:" + dest
		}
		n = &ast.Node{Type: ast.Link, Destination: dest}
		n.AppendChild(&ast.Node{Type: ast.Text, Literal: string(t.Label(c.source))})
		parent.AppendChild(n)
		return
	case *gast.RawHTML:
		var b bytes.Buffer
		for i := 0; i < t.Segments.Len(); i++ {
			seg := t.Segments.At(i)
			b.Write(seg.Value(c.source))
		}
		parent.AppendChild(&ast.Node{Type: ast.HTMLInline, Literal: b.String()})
		return
	default:
		c.children(parent, src)
		return
	}
	parent.AppendChild(n)
	c.children(n, src)
	if src.Type() == gast.TypeBlock {
		n.SourcePos = union(c.blockSpan(src), c.span(n))
	}
}

// spaceLineEnding writes v, turning a trailing line ending into a space as
// code spans require.
func spaceLineEnding(b *bytes.Buffer, v []byte) {
	if n := len(v); n > 0 && v[n-1] == '\n' {
		b.Write(bytes.TrimSuffix(v[:n-1], []byte("\r")))
		b.WriteByte(' ')
		return
	}
	b.Write(v)
}

// inlineText resolves backslash escapes and character references in a text segment.
func (c *converter) inlineText(t *gast.Text) string {
	v := t.Segment.Value(c.source)
	if t.IsRaw() {
		return string(v)
	}
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	v = util.ResolveEntityNames(v)
	return string(v)
}

func (c *converter) lineText(lines *text.Segments) string {
	var b bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.source))
	}
	return b.String()
}

// span covers a block from its first positioned child to its last.
func (c *converter) span(n *ast.Node) *ast.SourcePos {
	var first, last *ast.SourcePos
	for ch := n.FirstChild(); ch != nil; ch = ch.Next() {
		if ch.SourcePos == nil {
			continue
		}
		if first == nil {
			first = ch.SourcePos
		}
		last = ch.SourcePos
	}
	if first == nil {
		return nil
	}
	return &ast.SourcePos{Start: first.Start, End: last.End}
}

func union(a, b *ast.SourcePos) *ast.SourcePos {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	u := *a
	if before(b.Start, u.Start) {
		u.Start = b.Start
	}
	if before(u.End, b.End) {
		u.End = b.End
	}
	return &u
}

func before(p, q ast.Position) bool {
	return p.Line < q.Line || p.Line == q.Line && p.Column < q.Column
}

// blockSpan covers the source lines a block consumed, from the first
// non-blank column of its opening line to the last character of its final line.
// Fence lines, heading markers and setext underlines are included. Lines held
// by child blocks are not; convert extends the span over them.
func (c *converter) blockSpan(src gast.Node) *ast.SourcePos {
	start, stop := -1, -1
	if lines := src.Lines(); lines != nil && lines.Len() > 0 {
		last := lines.At(lines.Len() - 1)
		start = lines.At(0).Start
		stop = c.lastChar(last.Start, last.Stop)
	}
	if s := c.spans[src]; s != nil {
		open := s.open
		for open < len(c.source) && (c.source[open] == ' ' || c.source[open] == '\t') {
			open++
		}
		if start < 0 || open < start {
			start = open
		}
		if end := c.lastChar(s.last, c.lineEnd(s.last)); end > stop {
			stop = end
		}
	}
	if start < 0 || start >= len(c.source) {
		return nil
	}
	return &ast.SourcePos{Start: c.position(start), End: c.position(stop)}
}

// lastChar returns the offset of the last byte in [from, to) that is not a line ending.
func (c *converter) lastChar(from, to int) int {
	for to > from && (c.source[to-1] == '\n' || c.source[to-1] == '\r') {
		to--
	}
	if to > from {
		return to - 1
	}
	return from
}

func (c *converter) lineEnd(offset int) int {
	if i := bytes.IndexByte(c.source[offset:], '\n'); i >= 0 {
		return offset + i
	}
	return len(c.source)
}

func (c *converter) position(offset int) ast.Position {
	line := sort.Search(len(c.lines), func(i int) bool { return c.lines[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	return ast.Position{Line: line + 1, Column: offset - c.lines[line] + 1}
}

func lineStarts(source []byte) []int {
	starts := []int{0}
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
