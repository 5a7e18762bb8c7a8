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

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"akhil.cc/cmrender/ast"
	"akhil.cc/cmrender/render"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) (*flags, *pflag.FlagSet) {
	t.Helper()
	var f flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(fs)
	require.NoError(t, fs.Parse(args))
	return &f, fs
}

func TestFlagOptions(t *testing.T) {
	f, fs := parseFlags(t, "--sourcepos", "--disallow", "Image,HtmlBlock", "--softbreak", "br")
	opts, err := f.options(fs, log.New(io.Discard))
	require.NoError(t, err)
	assert.True(t, opts.SourcePos)
	assert.Equal(t, "br", opts.SoftBreak)
	assert.Equal(t, []ast.NodeType{ast.Image, ast.HTMLBlock}, opts.DisallowedTypes)
	assert.NotNil(t, opts.Logger)
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sourcePos: true\ndisallowedTypes: [Text]\nskipHtml: true\n"), 0o644))

	f, fs := parseFlags(t, "-c", path, "--sourcepos=false", "--allow", "Paragraph")
	opts, err := f.options(fs, log.New(io.Discard))
	require.NoError(t, err)
	assert.False(t, opts.SourcePos)
	assert.True(t, opts.SkipHTML)
	assert.Equal(t, []ast.NodeType{ast.Paragraph}, opts.AllowedTypes)
	assert.Nil(t, opts.DisallowedTypes)

	_, err = render.New(opts)
	assert.NoError(t, err)
}

func TestFlagErrors(t *testing.T) {
	f, fs := parseFlags(t, "--allow", "Text", "--disallow", "Emph")
	_, err := f.options(fs, log.New(io.Discard))
	assert.ErrorIs(t, err, render.ErrConfig)

	f, fs = parseFlags(t, "--allow", "Table")
	_, err = f.options(fs, log.New(io.Discard))
	assert.EqualError(t, err, `unknown node type "Table"`)
}
