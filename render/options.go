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
	"akhil.cc/cmrender/ast"
	"akhil.cc/cmrender/gen"
	"github.com/charmbracelet/log"
)

// Options configures an Engine. The zero value renders every node type with
// the default renderers.
type Options struct {
	// SourcePos adds a "line:col-line:col" SourcePos prop to positioned nodes.
	SourcePos bool
	// EscapeHTML renders raw HTML nodes as escaped text.
	EscapeHTML bool
	// SkipHTML drops raw HTML nodes from the output.
	SkipHTML bool
	// SoftBreak is the output used for soft line breaks. Nil and "" mean "\n";
	// the string "br" means a <br> element.
	SoftBreak Output

	// AllowedTypes restricts rendering to the listed types.
	// At most one of AllowedTypes and DisallowedTypes may be non-nil.
	AllowedTypes []ast.NodeType
	// DisallowedTypes removes the listed types from the default vocabulary.
	DisallowedTypes []ast.NodeType
	// AllowNode, if set, is consulted for leaves and for containers once
	// their children are rendered. Returning false drops the node.
	AllowNode func(NodeView) bool
	// UnwrapDisallowed promotes the children of dropped containers to
	// their parent instead of dropping the whole subtree.
	UnwrapDisallowed bool

	// Renderers overlays the default renderers. A nil entry removes the
	// default renderer for its type.
	Renderers map[ast.NodeType]Renderer

	// Logger receives debug events about dropped nodes. Nil disables logging.
	Logger *log.Logger
}

// Engine is an immutable, validated render configuration. It is safe for
// concurrent use on trees that do not share nodes.
type Engine struct {
	sourcePos  bool
	escapeHTML bool
	skipHTML   bool
	softBreak  Output
	allowed    map[ast.NodeType]bool
	allowNode  func(NodeView) bool
	unwrap     bool
	renderers  registry
	logger     *log.Logger
}

// New validates opts and returns the engine they describe.
func New(opts Options) (*Engine, error) {
	if opts.AllowedTypes != nil && opts.DisallowedTypes != nil {
		return nil, &ConfigError{
			Option: "allowedTypes",
			Reason: "only one of `allowedTypes` and `disallowedTypes` should be defined",
		}
	}
	if err := checkTypes("allowedTypes", opts.AllowedTypes); err != nil {
		return nil, err
	}
	if err := checkTypes("disallowedTypes", opts.DisallowedTypes); err != nil {
		return nil, err
	}
	for t := range opts.Renderers {
		if !t.Valid() {
			return nil, &ConfigError{Option: "renderers", Reason: "unknown node type " + t.String()}
		}
	}

	allowed := opts.AllowedTypes
	if allowed == nil {
		allowed = Types()
	}
	set := make(map[ast.NodeType]bool, len(allowed))
	for _, t := range allowed {
		set[t] = true
	}
	for _, t := range opts.DisallowedTypes {
		delete(set, t)
	}

	softBreak := opts.SoftBreak
	switch softBreak {
	case nil, "":
		softBreak = "\n"
	case "br":
		softBreak = gen.Create("br", 0, nil)
	}

	return &Engine{
		sourcePos:  opts.SourcePos,
		escapeHTML: opts.EscapeHTML,
		skipHTML:   opts.SkipHTML,
		softBreak:  softBreak,
		allowed:    set,
		allowNode:  opts.AllowNode,
		unwrap:     opts.UnwrapDisallowed,
		renderers:  newRegistry(opts.Renderers),
		logger:     opts.Logger,
	}, nil
}

// MustNew is like New but panics if opts are invalid.
func MustNew(opts Options) *Engine {
	e, err := New(opts)
	if err != nil {
		panic(err)
	}
	return e
}

func checkTypes(option string, types []ast.NodeType) error {
	for _, t := range types {
		if !t.Valid() {
			return &ConfigError{Option: option, Reason: "unknown node type " + t.String()}
		}
	}
	return nil
}

func (e *Engine) debug(msg string, keyvals ...interface{}) {
	if e.logger != nil {
		e.logger.Debug(msg, keyvals...)
	}
}
