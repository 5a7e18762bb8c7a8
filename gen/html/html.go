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

// Package html writes rendered output nodes as HTML.
// Text children are escaped; an element's InnerHTML is written verbatim.
//
// Output nodes are converted as follows:
// 	string                      escaped text
// 	*gen.Element                <tag attrs...>children</tag>, or <tag/> for void tags
// 	[]interface{}               each item in order
// 	nil                         nothing
// 	fmt.Stringer, other values  escaped text of their fmt.Sprint form
package html // import "akhil.cc/cmrender/gen/html"

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"akhil.cc/cmrender/gen"
	xhtml "golang.org/x/net/html"
)

type stickyCountWriter struct {
	n   int64
	err error
	w   io.Writer
}

func (c *stickyCountWriter) Write(p []byte) (n int, err error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err = c.w.Write(p)
	c.err = err
	c.n += int64(n)
	return
}

// Generator represents a non-reusable HTML output generator for a sequence
// of rendered output nodes.
type Generator struct {
	// Stdout specifies the generator's standard output.
	Stdout   io.Writer
	ctx      context.Context
	nodes    []interface{}
	waitdone chan error

	m     sync.Mutex
	pipes []io.Closer
}

// Gen returns the Generator struct to convert the given output nodes into HTML.
func Gen(nodes []interface{}) *Generator {
	return &Generator{ctx: context.TODO(), nodes: nodes}
}

// GenContext is like Gen but includes a context.
//
// The provided context is used to halt HTML generation
// after writing a top-level output node.
func GenContext(ctx context.Context, nodes []interface{}) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, nodes: nodes}
}

// Start starts the generator but does not wait for it to complete.
func (g *Generator) Start() error {
	if g.waitdone != nil {
		return fmt.Errorf("already started")
	}
	if g.Stdout == nil {
		g.Stdout = io.Discard
	}
	g.waitdone = make(chan error, 1)
	go func() {
		err := g.gen()
		g.m.Lock()
		for _, p := range g.pipes {
			p.Close()
		}
		g.pipes = nil
		g.m.Unlock()
		g.waitdone <- err
	}()
	return nil
}

// Wait waits for the generator to complete and returns its error.
// It is an error to call Wait before Start has been called.
func (g *Generator) Wait() error {
	if g.waitdone == nil {
		return fmt.Errorf("not started")
	}
	return <-g.waitdone
}

// Run starts the generator and waits for it to complete, returning
// any errors encountered.
func (g *Generator) Run() error {
	if err := g.Start(); err != nil {
		return err
	}
	return g.Wait()
}

// StdoutPipe returns a pipe that is connected to the generator's
// standard output. The pipe is closed once generation finishes.
func (g *Generator) StdoutPipe() (io.Reader, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	pr, pw := io.Pipe()
	g.Stdout = pw
	g.pipes = append(g.pipes, pw)
	return pr, nil
}

// Output runs the generator and returns its standard output.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	var stdout bytes.Buffer
	g.Stdout = &stdout
	err := g.Run()
	return stdout.Bytes(), err
}

func (g *Generator) gen() error {
	cw := &stickyCountWriter{0, nil, g.Stdout}
	for _, n := range g.nodes {
		select {
		case <-g.ctx.Done():
			if cw.err != nil {
				return cw.err
			}
			return g.ctx.Err()
		default:
			for _, hn := range convert(n) {
				if err := xhtml.Render(cw, hn); err != nil {
					return err
				}
			}
		}
	}
	return cw.err
}

// Write renders nodes to w as HTML.
func Write(w io.Writer, nodes []interface{}) error {
	g := Gen(nodes)
	g.Stdout = w
	return g.Run()
}

func convert(v interface{}) []*xhtml.Node {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return []*xhtml.Node{{Type: xhtml.TextNode, Data: t}}
	case *gen.Element:
		if t == nil {
			return nil
		}
		n := &xhtml.Node{Type: xhtml.ElementNode, Data: t.Tag}
		for _, a := range t.Attrs {
			n.Attr = append(n.Attr, xhtml.Attribute{Key: a.Key, Val: a.Val})
		}
		if t.InnerHTML != "" {
			n.AppendChild(&xhtml.Node{Type: xhtml.RawNode, Data: t.InnerHTML})
			return []*xhtml.Node{n}
		}
		for _, c := range t.Children {
			for _, hn := range convert(c) {
				n.AppendChild(hn)
			}
		}
		return []*xhtml.Node{n}
	case []interface{}:
		var out []*xhtml.Node
		for _, c := range t {
			out = append(out, convert(c)...)
		}
		return out
	default:
		return []*xhtml.Node{{Type: xhtml.TextNode, Data: fmt.Sprint(t)}}
	}
}
