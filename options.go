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

import "go.uber.org/zap"

// Option configures a Book2MD instance.
type Option func(*Book2MD)

// WithLogger sets the logger used for conversion diagnostics. A nil logger is
// ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Book2MD) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithoutImages disables image extraction. Image references are still
// rendered, pointing at images/<name>.
func WithoutImages() Option {
	return func(b *Book2MD) {
		b.noImages = true
	}
}

// WithKeepDataURIs configures whether to keep full data URIs in output
// (default: false, which truncates them to data:mime/type;base64...).
func WithKeepDataURIs(keep bool) Option {
	return func(b *Book2MD) {
		b.keepDataURIs = keep
	}
}

// WithMediaPrefix sets the package directory DOCX relationship targets are
// resolved against (default "word/").
func WithMediaPrefix(prefix string) Option {
	return func(b *Book2MD) {
		b.mediaPrefix = prefix
	}
}
