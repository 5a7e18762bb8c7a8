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
	"errors"
	"fmt"

	"akhil.cc/cmrender/ast"
)

var (
	// ErrConfig matches every *ConfigError.
	ErrConfig = errors.New("invalid render configuration")
	// ErrMissingRenderer matches every *MissingRendererError.
	ErrMissingRenderer = errors.New("missing renderer")
)

// ConfigError reports options that cannot build an Engine.
type ConfigError struct {
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("render: option `%s`: %s", e.Option, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// MissingRendererError reports an allowed node type reached during a render
// with no renderer registered for it.
type MissingRendererError struct {
	Type ast.NodeType
}

func (e *MissingRendererError) Error() string {
	return fmt.Sprintf("render: renderer for type `%s` not defined", e.Type)
}

func (e *MissingRendererError) Is(target error) bool { return target == ErrMissingRenderer }
