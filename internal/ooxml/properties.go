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

package ooxml

import (
	"archive/zip"
	"encoding/xml"
	"strings"
)

// Properties holds the descriptive metadata of a package.
type Properties struct {
	Title       string
	Creator     string
	Language    string
	Description string
	Company     string
}

type coreProperties struct {
	Title       string `xml:"title"`
	Creator     string `xml:"creator"`
	Language    string `xml:"language"`
	Description string `xml:"description"`
}

type appProperties struct {
	Company string `xml:"Company"`
}

// ReadProperties reads docProps/core.xml and docProps/app.xml. Missing or
// malformed parts leave the corresponding fields empty.
func ReadProperties(zr *zip.Reader) Properties {
	var props Properties

	if data, err := ReadPart(zr, "docProps/core.xml"); err == nil {
		var core coreProperties
		if xml.Unmarshal(data, &core) == nil {
			props.Title = strings.TrimSpace(core.Title)
			props.Creator = strings.TrimSpace(core.Creator)
			props.Language = strings.TrimSpace(core.Language)
			props.Description = strings.TrimSpace(core.Description)
		}
	}

	if data, err := ReadPart(zr, "docProps/app.xml"); err == nil {
		var app appProperties
		if xml.Unmarshal(data, &app) == nil {
			props.Company = strings.TrimSpace(app.Company)
		}
	}

	return props
}
