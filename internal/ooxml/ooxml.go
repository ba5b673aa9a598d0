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

// Package ooxml reads parts, relationships and document properties from
// Office Open XML and other zip-based packages.
package ooxml

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/nicholasgasior/book2md/internal/docmodel"
)

// Common OOXML namespaces.
const (
	NSRelationships    = "http://schemas.openxmlformats.org/package/2006/relationships"
	NSWordprocessingML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NSRelDoc           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// ErrPartNotFound is returned when a package part does not exist.
var ErrPartNotFound = errors.New("part not found")

// Relationship represents an OOXML relationship.
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// External reports whether the target lives outside the package.
func (r Relationship) External() bool {
	return strings.EqualFold(r.TargetMode, "External")
}

type relationships struct {
	XMLName       xml.Name       `xml:"Relationships"`
	Relationships []Relationship `xml:"Relationship"`
}

// ParseRelationships parses a .rels part. A missing part yields an empty map.
func ParseRelationships(zr *zip.Reader, relsPath string) (map[string]Relationship, error) {
	f := findPart(zr, relsPath)
	if f == nil {
		return make(map[string]Relationship), nil
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", relsPath, err)
	}
	defer rc.Close()
	return decodeRels(rc)
}

func decodeRels(r io.Reader) (map[string]Relationship, error) {
	var rels relationships
	if err := xml.NewDecoder(r).Decode(&rels); err != nil {
		return nil, fmt.Errorf("decode relationships: %w", err)
	}
	result := make(map[string]Relationship, len(rels.Relationships))
	for _, rel := range rels.Relationships {
		result[rel.ID] = rel
	}
	return result, nil
}

// Targets flattens relationships into the id -> raw target table used for
// rendering. Targets are kept exactly as written in the .rels part.
func Targets(rels map[string]Relationship) docmodel.Relationships {
	out := make(docmodel.Relationships, len(rels))
	for id, rel := range rels {
		out[id] = rel.Target
	}
	return out
}

func findPart(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// HasPart reports whether the package contains name.
func HasPart(zr *zip.Reader, name string) bool {
	return findPart(zr, name) != nil
}

// ReadPart reads a part from the package.
func ReadPart(zr *zip.Reader, name string) ([]byte, error) {
	f := findPart(zr, name)
	if f == nil {
		return nil, fmt.Errorf("%w: %q", ErrPartNotFound, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// PartsUnder lists the non-directory parts whose name starts with prefix, in
// archive order.
func PartsUnder(zr *zip.Reader, prefix string) []*zip.File {
	var parts []*zip.File
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.HasPrefix(f.Name, prefix) {
			continue
		}
		parts = append(parts, f)
	}
	return parts
}

// RelsPathFor returns the .rels path for a given part.
func RelsPathFor(partPath string) string {
	dir := path.Dir(partPath)
	base := path.Base(partPath)
	if dir == "." {
		return "_rels/" + base + ".rels"
	}
	return dir + "/_rels/" + base + ".rels"
}

// ResolveTarget resolves a relative target path against a base part path.
func ResolveTarget(basePath, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(basePath), target)
}
