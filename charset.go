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
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// reMetaCharset finds a charset declared by an XML prolog or an HTML meta tag.
var reMetaCharset = regexp.MustCompile(`(?i)(?:encoding|charset)\s*=\s*["']?([a-z0-9_.:-]+)`)

// decodeText converts data to UTF-8. The charset hint is tried first, then a
// charset declared inside the first KiB of the content, then detection.
// Valid UTF-8 is returned unchanged.
func decodeText(data []byte, hint string) string {
	data = bytes.TrimPrefix(data, utf8BOM)

	if hint != "" {
		if s, ok := decodeWith(data, hint); ok {
			return s
		}
	}

	if utf8.Valid(data) {
		return string(data)
	}

	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	if m := reMetaCharset.FindSubmatch(head); m != nil {
		if s, ok := decodeWith(data, string(m[1])); ok {
			return s
		}
	}

	results, err := chardet.NewTextDetector().DetectAll(data)
	if err == nil {
		for _, r := range results {
			if s, ok := decodeWith(data, r.Charset); ok {
				return s
			}
		}
	}

	return strings.ToValidUTF8(string(data), "�")
}

func decodeWith(data []byte, charset string) (string, bool) {
	enc := lookupEncoding(charset)
	if enc == nil {
		return "", false
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// lookupEncoding maps a charset label to an encoding using the WHATWG label
// index, which also covers the names chardet reports. It returns nil for
// unknown labels and for labels the index maps to the replacement encoding.
func lookupEncoding(charset string) encoding.Encoding {
	label := strings.ToLower(strings.TrimSpace(charset))
	if label == "" {
		return nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil || enc == encoding.Replacement {
		return nil
	}
	return enc
}
