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

// Package gen holds the output nodes built by the default renderers.
//
// An Element mirrors a host framework's element: a tag, attributes, a key that
// identifies it among its siblings, and already rendered children. Children are
// opaque values; the default renderers only ever produce strings, nil and
// *Element, but user renderers may mix in anything.
package gen

// Attr is a single element attribute.
type Attr struct {
	Key string
	Val string
}

// Element is a renderable output node.
type Element struct {
	Tag      string
	Key      int
	Attrs    []Attr
	Children []interface{}

	// InnerHTML, when set, replaces Children with unescaped markup.
	InnerHTML string
}

// Create returns an element with the given tag, key, attributes and children.
// Empty attribute and child lists are stored as nil.
func Create(tag string, key int, attrs []Attr, children ...interface{}) *Element {
	if len(attrs) == 0 {
		attrs = nil
	}
	if len(children) == 0 {
		children = nil
	}
	return &Element{Tag: tag, Key: key, Attrs: attrs, Children: children}
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
