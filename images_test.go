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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractImages(t *testing.T) {
	b := New()
	images, m := b.extractImages([]asset{
		{href: "OEBPS/a/fig.png", data: []byte("a")},
		{href: "OEBPS/b/fig.png", data: []byte("b")},
		{href: "OEBPS/a/fig.png", data: []byte("dup")},
		{href: "OEBPS/cover", data: []byte(pngSignature)},
		{href: "", data: []byte("none")},
	})

	var paths []string
	for _, img := range images {
		paths = append(paths, img.Path)
	}
	assert.Equal(t, []string{"images/fig.png", "images/fig-2.png", "images/cover.png"}, paths)
	assert.Equal(t, []byte("a"), images[0].Data)

	assert.Equal(t, 3, m.Len())
	p, ok := m.Lookup("OEBPS/b/fig.png")
	assert.True(t, ok)
	assert.Equal(t, "images/fig-2.png", p)
}

func TestExtractImagesDisabled(t *testing.T) {
	images, m := New(WithoutImages()).extractImages([]asset{{href: "word/media/a.png", data: []byte("a")}})
	assert.Nil(t, images)
	assert.Equal(t, 0, m.Len())
}

func TestUniqueName(t *testing.T) {
	taken := map[string]bool{"a.png": true, "a-2.png": true, "noext": true}
	assert.Equal(t, "b.png", uniqueName("b.png", taken))
	assert.Equal(t, "a-3.png", uniqueName("a.png", taken))
	assert.Equal(t, "noext-2", uniqueName("noext", taken))
}
