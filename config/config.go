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

// Package config loads render options from YAML documents.
//
// A document is a mapping with any of the keys below:
//
//	sourcePos: true
//	escapeHtml: false
//	skipHtml: false
//	softBreak: br
//	unwrapDisallowed: true
//	disallowedTypes: [Image, HtmlBlock]   # or allowedTypes, never both
//	renderers:
//	  Emph: i
//	  Strong: b
//
// Type names are those printed by ast.NodeType.String. Each renderers entry
// replaces the renderer for a type with one that wraps its children in the
// given tag.
package config // import "akhil.cc/cmrender/config"

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"akhil.cc/cmrender/ast"
	"akhil.cc/cmrender/render"
	"gopkg.in/yaml.v3"
)

// LoadFile reads options from the YAML file at path.
func LoadFile(path string) (render.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return render.Options{}, err
	}
	defer f.Close()
	opts, err := Load(f)
	if err != nil {
		return render.Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// Load decodes a single YAML document from r. An empty document yields
// zero options.
func Load(r io.Reader) (render.Options, error) {
	var raw map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return render.Options{}, nil
		}
		return render.Options{}, &render.ConfigError{Option: "document", Reason: err.Error()}
	}
	return Decode(raw)
}

// Decode validates loosely typed option values, as produced by a YAML or
// JSON decoder, and converts them into render options.
func Decode(raw map[string]interface{}) (render.Options, error) {
	var opts render.Options
	if raw["allowedTypes"] != nil && raw["disallowedTypes"] != nil {
		return opts, &render.ConfigError{
			Option: "allowedTypes",
			Reason: "only one of `allowedTypes` and `disallowedTypes` should be defined",
		}
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var err error
	for _, k := range keys {
		v := raw[k]
		switch k {
		case "sourcePos":
			opts.SourcePos, err = boolean(k, v)
		case "escapeHtml":
			opts.EscapeHTML, err = boolean(k, v)
		case "skipHtml":
			opts.SkipHTML, err = boolean(k, v)
		case "unwrapDisallowed":
			opts.UnwrapDisallowed, err = boolean(k, v)
		case "softBreak":
			if v != nil {
				s, ok := v.(string)
				if !ok {
					return opts, &render.ConfigError{Option: k, Reason: "must be a string"}
				}
				opts.SoftBreak = s
			}
		case "allowedTypes":
			opts.AllowedTypes, err = types(k, v)
		case "disallowedTypes":
			opts.DisallowedTypes, err = types(k, v)
		case "renderers":
			opts.Renderers, err = renderers(k, v)
		case "allowNode":
			err = &render.ConfigError{Option: k, Reason: "`allowNode` must be a function"}
		default:
			err = &render.ConfigError{Option: k, Reason: "unknown option"}
		}
		if err != nil {
			return render.Options{}, err
		}
	}
	return opts, nil
}

func boolean(option string, v interface{}) (bool, error) {
	if v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, &render.ConfigError{Option: option, Reason: "must be a boolean"}
	}
	return b, nil
}

func types(option string, v interface{}) ([]ast.NodeType, error) {
	if v == nil {
		return nil, nil
	}
	seq, ok := v.([]interface{})
	if !ok {
		return nil, &render.ConfigError{Option: option, Reason: fmt.Sprintf("`%s` must be an array", option)}
	}
	ts := make([]ast.NodeType, 0, len(seq))
	for _, item := range seq {
		t, err := nodeType(option, item)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, nil
}

func renderers(option string, v interface{}) (map[ast.NodeType]render.Renderer, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, &render.ConfigError{
			Option: option,
			Reason: "`renderers` must be a plain object of `Type`: `Renderer` pairs",
		}
	}
	rs := make(map[ast.NodeType]render.Renderer, len(m))
	for name, tag := range m {
		t, err := nodeType(option, name)
		if err != nil {
			return nil, err
		}
		s, ok := tag.(string)
		if !ok || s == "" {
			return nil, &render.ConfigError{Option: option, Reason: fmt.Sprintf("tag for `%s` must be a non-empty string", name)}
		}
		rs[t] = render.Tag(s)
	}
	return rs, nil
}

func nodeType(option string, v interface{}) (ast.NodeType, error) {
	name, ok := v.(string)
	if !ok {
		return 0, &render.ConfigError{Option: option, Reason: fmt.Sprintf("type name %v is not a string", v)}
	}
	t, ok := ast.ParseType(name)
	if !ok {
		return 0, &render.ConfigError{Option: option, Reason: fmt.Sprintf("unknown node type %q", name)}
	}
	return t, nil
}
