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
	"strconv"

	"akhil.cc/cmrender/ast"
	"akhil.cc/cmrender/gen"
)

// Tag returns a renderer that wraps a node's children in a tag element.
func Tag(tag string) Renderer {
	return func(p Props) Output {
		return gen.Create(tag, p.Key, attrs(p), p.Children...)
	}
}

func attrs(p Props) []gen.Attr {
	var a []gen.Attr
	if p.SourcePos != "" {
		a = append(a, gen.Attr{Key: "data-sourcepos", Val: p.SourcePos})
	}
	switch p.Type {
	case ast.Link:
		a = append(a, gen.Attr{Key: "href", Val: p.Href})
		if p.Title != "" {
			a = append(a, gen.Attr{Key: "title", Val: p.Title})
		}
	case ast.Image:
		a = append(a, gen.Attr{Key: "src", Val: p.Src}, gen.Attr{Key: "alt", Val: p.Alt})
		if p.Title != "" {
			a = append(a, gen.Attr{Key: "title", Val: p.Title})
		}
	}
	return a
}

func renderHTML(p Props) Output {
	if p.EscapeHTML {
		return p.Literal
	}
	if p.SkipHTML {
		return nil
	}
	tag := "span"
	if p.IsBlock {
		tag = "div"
	}
	e := gen.Create(tag, p.Key, attrs(p))
	e.InnerHTML = p.Literal
	return e
}

func renderList(p Props) Output {
	tag := "ul"
	a := attrs(p)
	if p.ListType == ast.Ordered {
		tag = "ol"
		if p.Start != 1 {
			a = append(a, gen.Attr{Key: "start", Val: strconv.Itoa(p.Start)})
		}
	}
	return gen.Create(tag, p.Key, a, p.Children...)
}

func renderCodeBlock(p Props) Output {
	var class []gen.Attr
	if p.Language != "" {
		class = []gen.Attr{{Key: "class", Val: "language-" + p.Language}}
	}
	code := gen.Create("code", 0, class, p.Literal)
	return gen.Create("pre", p.Key, attrs(p), code)
}

func renderHeading(p Props) Output {
	return gen.Create("h"+strconv.Itoa(p.Level), p.Key, attrs(p), p.Children...)
}

func renderText(p Props) Output { return p.Literal }

func renderSoftbreak(p Props) Output { return p.SoftBreak }
