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

package book2md

import (
	"fmt"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/nicholasgasior/book2md/internal/docmodel"
)

// ImagesDir is the output directory, relative to the Markdown files, that
// extracted images are written to.
const ImagesDir = "images"

// asset is a binary resource found inside an input package.
type asset struct {
	href string
	data []byte
}

// extractImages assigns every asset an output path under images/ and returns
// the images together with the href -> path map used for rewriting. The first
// asset for an href wins. Colliding file names get a numeric suffix.
func (b *Book2MD) extractImages(assets []asset) ([]Image, *docmodel.ImageMap) {
	m := docmodel.NewImageMap()
	if b != nil && b.noImages {
		return nil, m
	}

	var images []Image
	taken := make(map[string]bool)
	for _, a := range assets {
		if a.href == "" {
			continue
		}
		if _, ok := m.Lookup(a.href); ok {
			continue
		}
		name := imageFileName(a.href, a.data)
		name = uniqueName(name, taken)
		taken[name] = true

		p := ImagesDir + "/" + name
		m.Add(a.href, p)
		images = append(images, Image{Href: a.href, Path: p, Data: a.data})
	}

	if b != nil {
		b.logger.Debug("extracted images", zap.Int("count", len(images)))
	}
	return images, m
}

// imageFileName returns the last path segment of href, adding an extension
// detected from the content when the name has none.
func imageFileName(href string, data []byte) string {
	name := path.Base(href)
	if name == "." || name == "/" {
		name = "image"
	}
	if path.Ext(name) == "" {
		name += mimetype.Detect(data).Extension()
	}
	return name
}

func uniqueName(name string, taken map[string]bool) string {
	if !taken[name] {
		return name
	}
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, i, ext)
		if !taken[candidate] {
			return candidate
		}
	}
}
