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
	"golang.org/x/text/encoding/charmap"
)

func TestDecodeText(t *testing.T) {
	latin1, err := charmap.Windows1252.NewEncoder().String("café")
	assert.NoError(t, err)

	tests := []struct {
		name string
		data string
		hint string
		want string
	}{
		{"utf-8 passthrough", "naïve", "", "naïve"},
		{"bom stripped", "\xef\xbb\xbfhello", "", "hello"},
		{"hint", latin1, "windows-1252", "café"},
		{"declared in prolog", `<?xml version="1.0" encoding="windows-1252"?><p>` + latin1 + "</p>", "", `<?xml version="1.0" encoding="windows-1252"?><p>café</p>`},
		{"meta charset", `<meta charset="iso-8859-1"><p>` + latin1 + "</p>", "", `<meta charset="iso-8859-1"><p>café</p>`},
		{"unknown hint falls through", "plain", "x-no-such-charset", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeText([]byte(tt.data), tt.hint))
		})
	}
}

func TestLookupEncoding(t *testing.T) {
	assert.NotNil(t, lookupEncoding("Shift_JIS"))
	assert.NotNil(t, lookupEncoding(" UTF-8 "))
	assert.Nil(t, lookupEncoding(""))
	assert.Nil(t, lookupEncoding("iso-2022-kr"))
	assert.Nil(t, lookupEncoding("bogus"))
}
