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
	"strconv"

	"github.com/nicholasgasior/book2md/internal/docmodel"
)

const bulletMarker = "-"

type listKey struct {
	listID int
	level  int
}

// numberingResolver produces list markers and owns the list counters of a
// single render pass.
//
// Counters are keyed by (list id, level) only and are never reset, so two
// separate lists that reuse the same numbering id keep counting upwards.
// Every ordinal format renders as an Arabic numeral.
type numberingResolver struct {
	defs     *docmodel.Numbering
	counters map[listKey]int
}

func newNumberingResolver(defs *docmodel.Numbering) *numberingResolver {
	return &numberingResolver{
		defs:     defs,
		counters: make(map[listKey]int),
	}
}

// Marker returns the marker for the next item of listID at level.
func (n *numberingResolver) Marker(listID, level int) string {
	kind, ok := n.defs.Format(listID, level)
	if !ok || !kind.Ordinal() {
		return bulletMarker
	}

	key := listKey{listID: listID, level: level}
	n.counters[key]++
	return strconv.Itoa(n.counters[key]) + "."
}
