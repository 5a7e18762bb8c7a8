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

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"akhil.cc/cmrender/ast"
	"akhil.cc/cmrender/config"
	"akhil.cc/cmrender/gen"
	"akhil.cc/cmrender/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	src := `
sourcePos: true
escapeHtml: true
softBreak: br
unwrapDisallowed: true
disallowedTypes: [Image, HtmlBlock]
renderers:
  Emph: i
`
	opts, err := config.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.True(t, opts.SourcePos)
	assert.True(t, opts.EscapeHTML)
	assert.False(t, opts.SkipHTML)
	assert.True(t, opts.UnwrapDisallowed)
	assert.Equal(t, "br", opts.SoftBreak)
	assert.Nil(t, opts.AllowedTypes)
	assert.Equal(t, []ast.NodeType{ast.Image, ast.HTMLBlock}, opts.DisallowedTypes)
	require.Contains(t, opts.Renderers, ast.Emph)

	out := opts.Renderers[ast.Emph](render.Props{Key: 2, Children: []render.Output{"x"}})
	assert.Equal(t, gen.Create("i", 2, nil, "x"), out)

	_, err = render.New(opts)
	assert.NoError(t, err)
}

func TestLoadEmpty(t *testing.T) {
	opts, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, render.Options{}, opts)
}

var invalid = []struct {
	src    string
	option string
}{
	{"allowedTypes: [Text]\ndisallowedTypes: [Emph]", "allowedTypes"},
	{"allowedTypes: Text", "allowedTypes"},
	{"disallowedTypes: {Text: 1}", "disallowedTypes"},
	{"disallowedTypes: [Table]", "disallowedTypes"},
	{"allowedTypes: [1]", "allowedTypes"},
	{"allowNode: yes", "allowNode"},
	{"renderers: [Emph]", "renderers"},
	{"renderers: {Emph: 3}", "renderers"},
	{"renderers: {Footnote: sup}", "renderers"},
	{"sourcePos: maybe", "sourcePos"},
	{"softBreak: [1]", "softBreak"},
	{"colour: red", "colour"},
	{"- just\n- a list", "document"},
}

func TestLoadInvalid(t *testing.T) {
	for i, test := range invalid {
		_, err := config.Load(strings.NewReader(test.src))
		require.Error(t, err, "case %d, in %q", i, test.src)
		assert.True(t, errors.Is(err, render.ErrConfig), "case %d: %v", i, err)
		var cerr *render.ConfigError
		require.True(t, errors.As(err, &cerr), "case %d", i)
		assert.Equal(t, test.option, cerr.Option, "case %d, in %q", i, test.src)
	}
}

func TestDecodeNilValues(t *testing.T) {
	opts, err := config.Decode(map[string]interface{}{
		"allowedTypes":    nil,
		"disallowedTypes": []interface{}{"Text"},
		"sourcePos":       nil,
	})
	require.NoError(t, err)
	assert.Nil(t, opts.AllowedTypes)
	assert.Equal(t, []ast.NodeType{ast.Text}, opts.DisallowedTypes)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skipHtml: true\n"), 0o644))
	opts, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, opts.SkipHTML)

	require.NoError(t, os.WriteFile(path, []byte("skipHtml: 1\n"), 0o644))
	_, err = config.LoadFile(path)
	assert.ErrorIs(t, err, render.ErrConfig)
	assert.Contains(t, err.Error(), path)

	_, err = config.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
