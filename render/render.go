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

// Package render turns a CommonMark document tree into a sequence of
// output nodes.
//
// An Engine walks the tree once, depth first. Containers are rendered when
// they are left, after their children; leaves are rendered when reached.
// Each output is appended to the nearest ancestor that is itself being
// rendered, so children of suppressed or unwrapped nodes move up a level.
//
// Nodes may be filtered by type (Options.AllowedTypes,
// Options.DisallowedTypes) and by a predicate (Options.AllowNode). A
// filtered container either takes its subtree with it or, with
// Options.UnwrapDisallowed, leaves its children in place of itself.
//
// Paragraphs directly inside the items of a tight list are never rendered;
// their children belong to the item.
package render // import "akhil.cc/cmrender/render"

import "akhil.cc/cmrender/ast"

// Output is an opaque output node produced by a Renderer.
type Output = interface{}

type scratch struct {
	renderer Renderer
	children []Output
}

type state struct {
	keys    map[*ast.Node]int
	scratch map[*ast.Node]*scratch
}

// Render returns the rendered children of root, which is itself never
// rendered. It fails without partial output if an allowed node has no
// renderer.
func (e *Engine) Render(root *ast.Node) ([]Output, error) {
	if root == nil {
		return nil, nil
	}
	st := &state{
		keys:    make(map[*ast.Node]int),
		scratch: make(map[*ast.Node]*scratch),
	}
	st.scratch[root] = &scratch{children: []Output{}}

	w := root.Walker()
	w.Next() // root entering
	for {
		ev, ok := w.Next()
		if !ok {
			break
		}
		n, entering := ev.Node, ev.Entering
		if n == root {
			continue
		}
		key := 0
		if prev := n.Prev(); prev != nil {
			key = st.keys[prev] + 1
		}
		st.keys[n] = key

		if n.Type == ast.Paragraph && inTightList(n) {
			continue
		}

		var props *Props
		deniedByUser := false
		if e.judges(n, entering) {
			children := st.children(n)
			p := e.props(n, key, children)
			props = &p
			deniedByUser = !e.userAllows(p, children)
		}

		if deniedByUser || !e.typeAllowed(n.Type) {
			e.drop(w, st, n, entering)
			continue
		}

		fn, ok := e.renderers.resolve(n.Type)
		if !ok {
			return nil, &MissingRendererError{Type: n.Type}
		}

		if n.IsContainer() && entering {
			st.scratch[n] = &scratch{renderer: fn, children: []Output{}}
			continue
		}
		if props == nil {
			p := e.props(n, key, st.children(n))
			props = &p
		}
		if s := st.scratch[n]; s != nil {
			fn = s.renderer
			delete(st.scratch, n)
		}
		st.add(n, fn(*props))
	}
	return st.scratch[root].children, nil
}

// drop handles a filtered node. Entering a container without unwrapping
// skips its subtree; leaving a container that had started rendering either
// promotes or discards what it collected.
func (e *Engine) drop(w *ast.Walker, st *state, n *ast.Node, entering bool) {
	if n.IsContainer() && entering {
		if !e.unwrap {
			e.debug("dropping subtree", "type", n.Type, "key", st.keys[n])
			w.ResumeAt(n, false)
			return
		}
		e.debug("unwrapping node", "type", n.Type, "key", st.keys[n])
		return
	}
	s := st.scratch[n]
	if s == nil {
		return
	}
	delete(st.scratch, n)
	if e.unwrap {
		e.debug("promoting children", "type", n.Type, "count", len(s.children))
		for _, c := range s.children {
			st.add(n, c)
		}
		return
	}
	e.debug("dropping rendered children", "type", n.Type, "count", len(s.children))
}

func (st *state) children(n *ast.Node) []Output {
	if s := st.scratch[n]; s != nil {
		return s.children
	}
	return nil
}

// add appends out to the nearest ancestor of n that is being rendered.
func (st *state) add(n *ast.Node, out Output) {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if s := st.scratch[p]; s != nil {
			s.children = append(s.children, out)
			return
		}
	}
}

func inTightList(n *ast.Node) bool {
	p := n.Parent()
	if p == nil {
		return false
	}
	gp := p.Parent()
	return gp != nil && gp.Type == ast.List && gp.ListTight
}
