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

// Examples for render.go
package render_test

import (
	"fmt"
	"log"
	"os"
	"strings"

	"akhil.cc/cmrender/ast"
	"akhil.cc/cmrender/gen/html"
	"akhil.cc/cmrender/parser"
	"akhil.cc/cmrender/render"
)

func ExampleEngine_Render() {
	src := `# Favorite Hobbits
- Frodo
- *Samwise*
`
	doc := parser.MustParse(strings.NewReader(src))
	out, err := render.MustNew(render.Options{}).Render(doc)
	if err != nil {
		log.Fatal(err)
	}
	if err := html.Write(os.Stdout, out); err != nil {
		log.Fatal(err)
	}
	fmt.Println()
	// Output:
	// <h1>Favorite Hobbits</h1><ul><li>Frodo</li><li><em>Samwise</em></li></ul>
}

func ExampleOptions_allowNode() {
	doc := parser.MustParse(strings.NewReader("Visit [the site](https://example.com) *today*.\n"))
	e := render.MustNew(render.Options{
		UnwrapDisallowed: true,
		AllowNode: func(v render.NodeView) bool {
			return v.Type != ast.Link || strings.HasPrefix(v.Props.Href, "https://go.dev")
		},
	})
	out, err := e.Render(doc)
	if err != nil {
		log.Fatal(err)
	}
	if err := html.Write(os.Stdout, out); err != nil {
		log.Fatal(err)
	}
	fmt.Println()
	// Output:
	// <p>Visit the site <em>today</em>.</p>
}
