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

package render

import "strings"

const (
	// DefaultMediaPrefix is the package directory DOCX relationship targets
	// are relative to.
	DefaultMediaPrefix = "word/"

	fallbackImageDir = "images/"
)

// ResolveMedia maps an embed relationship id to an output image path.
//
// Once the id has a relationship the lookup cannot fail: it tries the image
// map with the raw target, then with the media prefix, then falls back to
// images/<filename>.
func (r *Renderer) ResolveMedia(embedID string) (string, bool) {
	target, ok := r.rels.Lookup(embedID)
	if !ok {
		return "", false
	}
	if p, ok := r.images.Lookup(target); ok {
		return p, true
	}
	if p, ok := r.images.Lookup(r.mediaPrefix + target); ok {
		return p, true
	}
	return fallbackImageDir + lastSegment(target), true
}

// ResolveHyperlink returns "#anchor" for internal links, otherwise the raw
// relationship target of relID.
func (r *Renderer) ResolveHyperlink(anchor, relID string) (string, bool) {
	if anchor != "" {
		return "#" + anchor, true
	}
	return r.rels.Lookup(relID)
}

func lastSegment(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}
