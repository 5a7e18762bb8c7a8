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

package render

import (
	"fmt"
	"strings"

	"akhil.cc/cmrender/ast"
	sq "github.com/kballard/go-shellquote"
)

// Props is everything a renderer may need about one node. Fields that do
// not apply to the node's type are left at their zero value.
type Props struct {
	Key      int
	Type     ast.NodeType
	Literal  string
	Children []Output

	// SourcePos is "startLine:startCol-endLine:endCol" when enabled.
	SourcePos string

	// HtmlBlock and HtmlInline.
	IsBlock    bool
	EscapeHTML bool
	SkipHTML   bool

	// CodeBlock: first word of the info string, and the remaining words
	// split with shell quoting rules.
	Language string
	Meta     []string

	// Heading.
	Level int

	// Softbreak.
	SoftBreak Output

	// Link and Image.
	Href  string
	Src   string
	Title string
	Alt   string

	// List.
	Start    int
	ListType ast.ListType
	Tight    bool
}

func (e *Engine) props(n *ast.Node, key int, children []Output) Props {
	p := Props{Key: key, Type: n.Type, Literal: n.Literal, Children: children}

	if e.sourcePos && n.SourcePos != nil {
		pos := n.SourcePos
		p.SourcePos = fmt.Sprintf("%d:%d-%d:%d",
			pos.Start.Line, pos.Start.Column, pos.End.Line, pos.End.Column)
	}

	switch n.Type {
	case ast.HTMLInline, ast.HTMLBlock:
		p.IsBlock = n.Type == ast.HTMLBlock
		p.EscapeHTML = e.escapeHTML
		p.SkipHTML = e.skipHTML
	case ast.CodeBlock:
		p.Language, p.Meta = parseInfo(n.Info)
	case ast.Code:
		p.Children = []Output{n.Literal}
	case ast.Heading:
		p.Level = n.Level
	case ast.Softbreak:
		p.SoftBreak = e.softBreak
	case ast.Link:
		p.Href = n.Destination
		p.Title = n.Title
	case ast.Image:
		p.Src = n.Destination
		p.Title = n.Title
		// Alt text has no structure in the output; only its text survives.
		p.Alt = plainText(n)
		p.Children = nil
	case ast.List:
		p.Start = n.ListStart
		p.ListType = n.ListType
		p.Tight = n.ListTight
	}
	return p
}

func parseInfo(info string) (lang string, meta []string) {
	fields := strings.SplitN(info, " ", 2)
	lang = fields[0]
	if len(fields) < 2 {
		return lang, nil
	}
	rest := strings.TrimLeft(fields[1], " ")
	if rest == "" {
		return lang, nil
	}
	meta, err := sq.Split(rest)
	if err != nil {
		meta = strings.Fields(rest)
	}
	return lang, meta
}

func plainText(n *ast.Node) string {
	var b strings.Builder
	ast.Walk(n, func(c *ast.Node, entering bool) ast.WalkStatus {
		switch c.Type {
		case ast.Softbreak, ast.Hardbreak:
			b.WriteByte('\n')
		default:
			if !c.IsContainer() {
				b.WriteString(c.Literal)
			}
		}
		return ast.WalkContinue
	})
	return b.String()
}
