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
	"strconv"

	"github.com/nicholasgasior/book2md/internal/docmodel"
)

type numberingXML struct {
	AbstractNums []abstractNumXML `xml:"abstractNum"`
	Nums         []numXML         `xml:"num"`
}

type abstractNumXML struct {
	ID     string     `xml:"abstractNumId,attr"`
	Levels []levelXML `xml:"lvl"`
}

type levelXML struct {
	Ilvl   string `xml:"ilvl,attr"`
	NumFmt valXML `xml:"numFmt"`
}

type numXML struct {
	ID            string `xml:"numId,attr"`
	AbstractNumID valXML `xml:"abstractNumId"`
}

// parseNumbering reads word/numbering.xml into list definitions. Entries with
// non-numeric ids are ignored.
func parseNumbering(data []byte) (*docmodel.Numbering, error) {
	var doc numberingXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("docx: parse numbering: %w", err)
	}

	n := docmodel.NewNumbering()
	for _, an := range doc.AbstractNums {
		id, err := strconv.Atoi(an.ID)
		if err != nil {
			continue
		}
		levels := make(docmodel.Levels, len(an.Levels))
		for _, lvl := range an.Levels {
			ilvl, err := strconv.Atoi(lvl.Ilvl)
			if err != nil {
				continue
			}
			levels[ilvl] = docmodel.ParseFormatKind(lvl.NumFmt.Val)
		}
		n.Abstracts[id] = levels
	}
	for _, num := range doc.Nums {
		id, err := strconv.Atoi(num.ID)
		if err != nil {
			continue
		}
		abstractID, err := strconv.Atoi(num.AbstractNumID.Val)
		if err != nil {
			continue
		}
		n.Nums[id] = abstractID
	}
	return n, nil
}
