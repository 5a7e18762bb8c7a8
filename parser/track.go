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

package parser

import (
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// consumed records the source a block parser read: the reader offset when the
// block opened and the start of the last line it took.
type consumed struct {
	open int
	last int
}

var spansKey = parser.NewContextKey()

func spansOf(pc parser.Context) map[gast.Node]*consumed {
	m, _ := pc.Get(spansKey).(map[gast.Node]*consumed)
	return m
}

// tracker wraps a goldmark block parser to note which lines each block
// consumes. goldmark nodes keep content segments only, which leave out fences,
// heading markers and thematic breaks entirely.
type tracker struct {
	parser.BlockParser
}

func (t tracker) Open(parent gast.Node, reader text.Reader, pc parser.Context) (gast.Node, parser.State) {
	_, seg := reader.Position()
	n, state := t.BlockParser.Open(parent, reader, pc)
	if m := spansOf(pc); n != nil && m != nil {
		m[n] = &consumed{open: seg.Start, last: seg.Start}
	}
	return n, state
}

func (t tracker) Continue(n gast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, seg := reader.Position()
	state := t.BlockParser.Continue(n, reader, pc)
	if l, after := reader.Position(); l != line || after.Start != seg.Start {
		if s := spansOf(pc)[n]; s != nil {
			s.last = seg.Start
		}
	}
	return state
}

func (t tracker) SetOption(name parser.OptionName, value interface{}) {
	if so, ok := t.BlockParser.(parser.SetOptioner); ok {
		so.SetOption(name, value)
	}
}

func newParser() parser.Parser {
	blocks := parser.DefaultBlockParsers()
	for i, v := range blocks {
		blocks[i] = util.Prioritized(tracker{v.Value.(parser.BlockParser)}, v.Priority)
	}
	return parser.NewParser(
		parser.WithBlockParsers(blocks...),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)
}
