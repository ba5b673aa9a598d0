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

package docx

import (
	"encoding/xml"
	"fmt"
	"strings"
)

type stylesXML struct {
	Styles []styleXML `xml:"style"`
}

type styleXML struct {
	Type string `xml:"type,attr"`
	ID   string `xml:"styleId,attr"`
	Name valXML `xml:"name"`
}

type valXML struct {
	Val string `xml:"val,attr"`
}

// styleNames maps paragraph style ids to their display names.
type styleNames map[string]string

func parseStyles(data []byte) (styleNames, error) {
	var doc stylesXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("docx: parse styles: %w", err)
	}
	names := make(styleNames, len(doc.Styles))
	for _, s := range doc.Styles {
		if s.Type != "" && s.Type != "paragraph" {
			continue
		}
		if s.ID != "" && s.Name.Val != "" {
			names[s.ID] = s.Name.Val
		}
	}
	return names, nil
}

// canonical maps a style id onto the built-in heading ids the renderer
// recognizes. Localized documents use ids such as "berschrift1" or "1" while
// keeping the English built-in name ("heading 1") in styles.xml.
func (s styleNames) canonical(id string) string {
	if isBuiltinHeading(id) {
		return id
	}
	name, ok := s[id]
	if !ok {
		return id
	}
	lower := strings.ToLower(strings.TrimSpace(name))
	switch {
	case lower == "title":
		return "Title"
	case lower == "subtitle":
		return "Subtitle"
	case strings.HasPrefix(lower, "heading "):
		n := strings.TrimPrefix(lower, "heading ")
		if len(n) == 1 && n[0] >= '1' && n[0] <= '6' {
			return "Heading" + n
		}
	}
	return id
}

func isBuiltinHeading(id string) bool {
	switch id {
	case "Title", "title", "Subtitle", "subtitle":
		return true
	}
	for _, prefix := range []string{"Heading", "heading", "heading "} {
		n := strings.TrimPrefix(id, prefix)
		if n != id && len(n) == 1 && n[0] >= '1' && n[0] <= '6' {
			return true
		}
	}
	return false
}
