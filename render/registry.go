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

import "akhil.cc/cmrender/ast"

// Renderer turns a node's props into an output node.
type Renderer func(p Props) Output

type registry map[ast.NodeType]Renderer

// defaults is built once and never written to.
var defaults = registry{
	ast.BlockQuote:    Tag("blockquote"),
	ast.Code:          Tag("code"),
	ast.Emph:          Tag("em"),
	ast.Hardbreak:     Tag("br"),
	ast.Image:         Tag("img"),
	ast.Item:          Tag("li"),
	ast.Link:          Tag("a"),
	ast.Paragraph:     Tag("p"),
	ast.Strong:        Tag("strong"),
	ast.ThematicBreak: Tag("hr"),

	ast.HTMLBlock:  renderHTML,
	ast.HTMLInline: renderHTML,

	ast.List:      renderList,
	ast.CodeBlock: renderCodeBlock,
	ast.Heading:   renderHeading,
	ast.Text:      renderText,
	ast.Softbreak: renderSoftbreak,
}

// newRegistry overlays overrides onto the defaults. Overrides replace
// defaults outright; a nil override removes the entry.
func newRegistry(overrides map[ast.NodeType]Renderer) registry {
	r := make(registry, len(defaults)+len(overrides))
	for t, fn := range defaults {
		r[t] = fn
	}
	for t, fn := range overrides {
		if fn == nil {
			delete(r, t)
			continue
		}
		r[t] = fn
	}
	return r
}

func (r registry) resolve(t ast.NodeType) (Renderer, bool) {
	fn, ok := r[t]
	return fn, ok && fn != nil
}

// DefaultRenderers returns a copy of the default renderer table.
func DefaultRenderers() map[ast.NodeType]Renderer {
	return newRegistry(nil)
}

// Types returns the node types that have a default renderer, in vocabulary
// order. It is the allowed set used when no AllowedTypes are given.
func Types() []ast.NodeType {
	var ts []ast.NodeType
	for _, t := range ast.Types() {
		if _, ok := defaults[t]; ok {
			ts = append(ts, t)
		}
	}
	return ts
}
