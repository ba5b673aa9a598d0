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

import (
	"path"
	"strings"

	"github.com/nicholasgasior/book2md/internal/docmodel"
)

// RewriteImagePaths replaces original asset references in md with their
// output paths, in image map insertion order. Later entries see the output of
// earlier ones.
//
// Besides the literal reference, the bare filename is replaced when it
// appears as "](name)" or "\"name\"", which covers chapters that refer to the
// same asset through a different relative path.
func RewriteImagePaths(md string, images *docmodel.ImageMap) string {
	images.Each(func(original, replacement string) {
		if original == "" {
			return
		}
		md = strings.ReplaceAll(md, original, replacement)

		name := path.Base(original)
		if name == "." || name == "/" || name == ".." {
			return
		}
		md = strings.ReplaceAll(md, "]("+name+")", "]("+replacement+")")
		md = strings.ReplaceAll(md, `"`+name+`"`, `"`+replacement+`"`)
	})
	return md
}
