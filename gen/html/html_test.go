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

package html

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"akhil.cc/cmrender/gen"
	"akhil.cc/cmrender/parser"
	"akhil.cc/cmrender/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var escapeSmall = []struct {
	in   string
	want string
}{
	{"**`n >= 3`**", "<p><strong><code>n &gt;= 3</code></strong></p>"},
	{"**`n`**", "<p><strong><code>n</code></strong></p>"},
	{"```go\na < b\n```", "<pre><code class=\"language-go\">a &lt; b\n</code></pre>"},
	{"1. a\n2. b", "<ol><li>a</li><li>b</li></ol>"},
	{"7. a", "<ol start=\"7\"><li>a</li></ol>"},
	{"a\n\n---", "<p>a</p><hr/>"},
	{"![a *b*](/x.png \"t\")", "<p><img src=\"/x.png\" alt=\"a b\" title=\"t\"/></p>"},
	{"a <i>b</i>", "<p>a <span><i></span>b<span></i></span></p>"},
}

func TestEscape(t *testing.T) {
	e := render.MustNew(render.Options{})
	for i, test := range escapeSmall {
		doc := parser.ParseBytes([]byte(test.in))
		out, err := e.Render(doc)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, out))
		assert.Equal(t, test.want, buf.String(), "case %d, in %q", i, test.in)
	}
}

func TestConvert(t *testing.T) {
	raw := gen.Create("div", 0, nil)
	raw.InnerHTML = "<b>&amp;</b>"
	nodes := []interface{}{
		"a & b",
		nil,
		[]interface{}{"x", gen.Create("br", 0, nil)},
		raw,
		42,
		(*gen.Element)(nil),
	}
	b, err := Gen(nodes).Output()
	require.NoError(t, err)
	assert.Equal(t, "a &amp; bx<br/><div><b>&amp;</b></div>42", string(b))
}

func TestGenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := GenContext(ctx, []interface{}{"a"})
	var out bytes.Buffer
	g.Stdout = &out
	err := g.Run()
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, out.String())
}

func TestGeneratorState(t *testing.T) {
	g := Gen(nil)
	assert.EqualError(t, g.Wait(), "not started")
	require.NoError(t, g.Run())
	assert.EqualError(t, g.Start(), "already started")

	g = Gen(nil)
	g.Stdout = io.Discard
	_, err := g.Output()
	assert.EqualError(t, err, "Stdout already set")
	_, err = g.StdoutPipe()
	assert.EqualError(t, err, "Stdout already set")
}

func TestStdoutPipe(t *testing.T) {
	g := Gen([]interface{}{gen.Create("p", 0, nil, "hi")})
	r, err := g.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, g.Start())
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, g.Wait())
	assert.Equal(t, "<p>hi</p>", strings.TrimSpace(string(b)))
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteError(t *testing.T) {
	err := Write(errWriter{}, []interface{}{"a", "b"})
	assert.EqualError(t, err, "closed")
}
