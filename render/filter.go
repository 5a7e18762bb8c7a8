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

// NodeView is the read-only view of a node passed to Options.AllowNode.
type NodeView struct {
	Type     ast.NodeType
	Renderer Renderer
	Props    Props
	Children []Output
}

func (e *Engine) typeAllowed(t ast.NodeType) bool {
	return e.allowed[t]
}

// judges reports whether the user predicate applies to this event. It is
// never consulted on a container's entering event: its children are not
// rendered yet.
func (e *Engine) judges(n *ast.Node, entering bool) bool {
	return e.allowNode != nil && (!n.IsContainer() || !entering)
}

func (e *Engine) userAllows(p Props, children []Output) bool {
	fn, _ := e.renderers.resolve(p.Type)
	return e.allowNode(NodeView{
		Type:     p.Type,
		Renderer: fn,
		Props:    p,
		Children: children,
	})
}
