// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

// Package render turns a docmodel tree into Markdown.
//
// A Renderer only holds read-only lookup tables, so one value may serve any
// number of concurrent Render calls. Mutable list numbering state lives in the
// pass created for each call.
package render

import (
	"strings"

	"github.com/nicholasgasior/book2md/internal/docmodel"
)

// Renderer renders document trees against one document's lookup tables.
type Renderer struct {
	rels        docmodel.Relationships
	numbering   *docmodel.Numbering
	images      *docmodel.ImageMap
	mediaPrefix string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithImages sets the map used to resolve embedded media to output paths.
func WithImages(images *docmodel.ImageMap) Option {
	return func(r *Renderer) {
		r.images = images
	}
}

// WithMediaPrefix overrides the package-internal directory prepended to
// relationship targets on the second ImageMap lookup (default "word/").
func WithMediaPrefix(prefix string) Option {
	return func(r *Renderer) {
		r.mediaPrefix = prefix
	}
}

// New creates a Renderer. rels and numbering may be nil.
func New(rels docmodel.Relationships, numbering *docmodel.Numbering, opts ...Option) *Renderer {
	r := &Renderer{
		rels:        rels,
		numbering:   numbering,
		mediaPrefix: DefaultMediaPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Convert renders root, rewrites image references and normalizes the result.
func (r *Renderer) Convert(root docmodel.Node) (string, error) {
	raw, err := r.Render(root)
	if err != nil {
		return "", err
	}
	return Normalize(RewriteImagePaths(raw, r.images)), nil
}

// pass is the state of one Render call.
type pass struct {
	*Renderer
	lists *numberingResolver
	out   strings.Builder
}
