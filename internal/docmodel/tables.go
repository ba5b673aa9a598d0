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

package docmodel

// Relationships maps a relationship id to its raw target (path or URL).
type Relationships map[string]string

// Lookup returns the target for id.
func (r Relationships) Lookup(id string) (string, bool) {
	if r == nil || id == "" {
		return "", false
	}
	t, ok := r[id]
	return t, ok
}

// FormatKind is the marker style of one numbering level.
type FormatKind int

const (
	// FormatUnknown means no format kind was recorded for the level.
	FormatUnknown FormatKind = iota
	FormatBullet
	FormatDecimal
	FormatUpperRoman
	FormatLowerRoman
	FormatUpperLetter
	FormatLowerLetter
	FormatNone
)

// Ordinal reports whether the kind renders a counted marker.
func (k FormatKind) Ordinal() bool {
	switch k {
	case FormatDecimal, FormatUpperRoman, FormatLowerRoman, FormatUpperLetter, FormatLowerLetter:
		return true
	}
	return false
}

// ParseFormatKind maps a w:numFmt value to a FormatKind.
func ParseFormatKind(numFmt string) FormatKind {
	switch numFmt {
	case "bullet":
		return FormatBullet
	case "decimal":
		return FormatDecimal
	case "upperRoman":
		return FormatUpperRoman
	case "lowerRoman":
		return FormatLowerRoman
	case "upperLetter":
		return FormatUpperLetter
	case "lowerLetter":
		return FormatLowerLetter
	case "none":
		return FormatNone
	}
	return FormatUnknown
}

// Levels maps an indent level to its format kind.
type Levels map[int]FormatKind

// Numbering resolves list ids to abstract definitions and their levels.
type Numbering struct {
	Nums      map[int]int    // list id -> abstract numbering id
	Abstracts map[int]Levels // abstract numbering id -> levels
}

// NewNumbering returns an empty numbering table.
func NewNumbering() *Numbering {
	return &Numbering{
		Nums:      make(map[int]int),
		Abstracts: make(map[int]Levels),
	}
}

// Format returns the format kind of level within list listID.
func (n *Numbering) Format(listID, level int) (FormatKind, bool) {
	if n == nil {
		return FormatUnknown, false
	}
	abstractID, ok := n.Nums[listID]
	if !ok {
		return FormatUnknown, false
	}
	levels, ok := n.Abstracts[abstractID]
	if !ok {
		return FormatUnknown, false
	}
	kind, ok := levels[level]
	if !ok || kind == FormatUnknown {
		return FormatUnknown, false
	}
	return kind, true
}

// ImageMap maps original asset references to output-relative paths,
// remembering insertion order.
type ImageMap struct {
	keys  []string
	paths map[string]string
}

// NewImageMap returns an empty ImageMap.
func NewImageMap() *ImageMap {
	return &ImageMap{paths: make(map[string]string)}
}

// Add records original -> path. The first entry for an original wins.
func (m *ImageMap) Add(original, path string) bool {
	if _, ok := m.paths[original]; ok {
		return false
	}
	m.keys = append(m.keys, original)
	m.paths[original] = path
	return true
}

// Lookup returns the path recorded for original.
func (m *ImageMap) Lookup(original string) (string, bool) {
	if m == nil {
		return "", false
	}
	p, ok := m.paths[original]
	return p, ok
}

// Len returns the number of entries.
func (m *ImageMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Each calls fn for every entry in insertion order.
func (m *ImageMap) Each(fn func(original, path string)) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		fn(k, m.paths[k])
	}
}
